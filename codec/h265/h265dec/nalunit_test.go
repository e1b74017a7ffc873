/*
DESCRIPTION
  nalunit_test.go provides testing for functionality in nalunit.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h265dec

import "testing"

func TestParseHeader(t *testing.T) {
	tests := []struct {
		in   []byte
		want Header
	}{
		{in: []byte{0x40, 0x01}, want: Header{Type: 32, TemporalID: 1}},
		{in: []byte{0x42, 0x01}, want: Header{Type: 33, TemporalID: 1}},
		{in: []byte{0x44, 0x01}, want: Header{Type: 34, TemporalID: 1}},
		{in: []byte{0x4e, 0x01}, want: Header{Type: 39, TemporalID: 1}},
		{in: []byte{0x26, 0x01}, want: Header{Type: 19, TemporalID: 1}},
		{in: []byte{0x41, 0x0a}, want: Header{Type: 32, LayerID: 33, TemporalID: 2}},
		{in: []byte{0x80, 0x00}, want: Header{ForbiddenBit: 1}},
	}

	for i, test := range tests {
		got, err := ParseHeader(test.in)
		if err != nil {
			t.Fatalf("did not expect error: %v for test: %d", err, i)
		}
		if got != test.want {
			t.Errorf("did not get expected result for test: %d\nGot: %+v\nWant: %+v\n", i, got, test.want)
		}
	}

	got, err := ParseHeader([]byte{0x40})
	if err == nil {
		t.Error("expected error for one byte header")
	}
	if want := (Header{Type: naluTypeVPS}); got != want {
		t.Errorf("did not get expected partial header\nGot: %+v\nWant: %+v\n", got, want)
	}
}

func TestTypeDescription(t *testing.T) {
	if got, want := TypeDescription(33), "SPS_NUT (Sequence Parameter Set)"; got != want {
		t.Errorf("got: %s, want: %s", got, want)
	}
	if got, want := TypeDescription(40), "SUFFIX_SEI_NUT (Suffix SEI)"; got != want {
		t.Errorf("got: %s, want: %s", got, want)
	}
	if got, want := TypeDescription(63), "Unknown type (63)"; got != want {
		t.Errorf("got: %s, want: %s", got, want)
	}
}
