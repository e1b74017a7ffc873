/*
DESCRIPTION
  parser_test.go provides testing for the parsing pipeline in parser.go and
  the records in unit.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analyser

import (
	"encoding/json"
	"testing"

	"github.com/ausocean/nalu/codec/h264/h264dec"
	"github.com/ausocean/nalu/codec/sei"
	"github.com/ausocean/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// spsHex is a baseline profile H.264 SPS with a 320x240 picture, preceded by
// a long start code.
const spsHex = "00000001 67 42 00 1e da 05 07 e8"

func TestParseHexSPS(t *testing.T) {
	p := NewParser(Options{UseLongStartCode: true}, (*logging.TestLogger)(t))
	units, err := p.ParseHex(spsHex, nil)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("unexpected number of units, got: %d, want: 1", len(units))
	}

	u := units[0]
	if u.Header.Type() != 7 {
		t.Errorf("unexpected nal_unit_type: %d", u.Header.Type())
	}
	if u.Details == nil || u.Details.Kind != KindSPS || u.Details.H264SPS == nil {
		t.Fatalf("expected SPS details, got: %+v", u.Details)
	}
	sps := u.Details.H264SPS
	if sps.ProfileIDC != 0x42 || sps.LevelIDC != 30 {
		t.Errorf("unexpected profile/level: %d/%d", sps.ProfileIDC, sps.LevelIDC)
	}
	if sps.Width() != 320 || sps.Height() != 240 {
		t.Errorf("unexpected dimensions: %dx%d", sps.Width(), sps.Height())
	}
	if u.StartCode != "00 00 00 01" || u.Position != 0 || u.Size != 8 {
		t.Errorf("unexpected unit location: %+v", u)
	}
	if u.Err != nil || u.Diagnostic != "" {
		t.Errorf("did not expect diagnostic: %v", u.Err)
	}
}

func TestParseHexOddLength(t *testing.T) {
	p := NewParser(Options{}, (*logging.TestLogger)(t))
	called := false
	units, err := p.ParseHex("000001 6", func(Unit, int) { called = true })
	if errors.Cause(err) != ErrOddHexLength {
		t.Errorf("expected ErrOddHexLength, got: %v", err)
	}
	if units != nil || called {
		t.Error("expected no units for invalid hex")
	}

	_, err = p.ParseHex("000001 6g", nil)
	if err == nil || errors.Cause(err) == ErrOddHexLength {
		t.Errorf("expected hex decode error, got: %v", err)
	}
}

func TestParseTruncatedUnit(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		in       []byte
		wantType uint8
	}{
		{
			name: "h264 truncated SPS",
			in: []byte{
				0x00, 0x00, 0x01, 0x09, 0xf0, // AUD
				0x00, 0x00, 0x01, 0x67, 0x42, // SPS missing all but profile_idc
			},
			wantType: 7,
		},
		{
			name: "h265 one byte header",
			opts: Options{IsH265: true},
			in: []byte{
				0x00, 0x00, 0x01, 0x44, 0x01, 0xc0, 0x73, 0x80, // PPS
				0x00, 0x00, 0x01, 0x40,                         // Header missing its second byte.
			},
			wantType: 32,
		},
		{
			name: "h265 one byte VPS",
			opts: Options{IsH265: true, UseLongStartCode: true},
			in: []byte{
				0x00, 0x00, 0x00, 0x01, 0x44, 0x01, 0xc0, 0x73, 0x80, // PPS
				0x00, 0x00, 0x00, 0x01, 0x40, // VPS header missing its second byte.
			},
			wantType: 32,
		},
	}

	for _, test := range tests {
		p := NewParser(test.opts, (*logging.TestLogger)(t))
		units := p.Parse(test.in, nil)
		if len(units) != 2 {
			t.Fatalf("%s: unexpected number of units, got: %d, want: 2", test.name, len(units))
		}
		if units[0].Details == nil || units[0].Err != nil {
			t.Errorf("%s: expected first unit to be parsed, got error: %v", test.name, units[0].Err)
		}
		if units[1].Details != nil {
			t.Errorf("%s: expected no details for truncated unit, got: %+v", test.name, units[1].Details)
		}
		if units[1].Err == nil || units[1].Diagnostic == "" {
			t.Errorf("%s: expected diagnostic for truncated unit", test.name)
		}
		if got := units[1].Header.Type(); got != test.wantType {
			t.Errorf("%s: unexpected nal_unit_type for truncated unit, got: %d, want: %d", test.name, got, test.wantType)
		}
	}
}

func TestParseAdjacentStartCodes(t *testing.T) {
	in := []byte{
		0x00, 0x00, 0x01,
		0x00, 0x00, 0x01, 0x09, 0xf0,
	}
	p := NewParser(Options{}, (*logging.TestLogger)(t))

	var positions []int
	units := p.Parse(in, func(u Unit, pos int) { positions = append(positions, pos) })
	if len(units) != 2 {
		t.Fatalf("unexpected number of units, got: %d, want: 2", len(units))
	}
	if units[0].Size != 0 || units[0].Details != nil || units[0].Err != nil {
		t.Errorf("unexpected empty unit: %+v", units[0])
	}
	want := &h264dec.AUD{PrimaryPicType: 7}
	if units[1].Details == nil || !cmp.Equal(want, units[1].Details.AUD) {
		t.Errorf("unexpected second unit details: %+v", units[1].Details)
	}
	if !cmp.Equal([]int{0, 3}, positions) {
		t.Errorf("unexpected callback positions: %v", positions)
	}
}

func TestParseStartCodeWidth(t *testing.T) {
	in := []byte{
		0xaa,                               // Leading byte, ignored.
		0x00, 0x00, 0x00, 0x01, 0x09, 0x10, // AUD, long start code.
		0x00, 0x00, 0x01, 0x09, 0x30,       // AUD, short start code.
	}

	tests := []struct {
		long      bool
		wantPos   []int
		wantSizes []int
	}{
		{long: true, wantPos: []int{1}, wantSizes: []int{7}},
		{long: false, wantPos: []int{2, 7}, wantSizes: []int{2, 2}},
	}

	for i, test := range tests {
		p := NewParser(Options{UseLongStartCode: test.long}, (*logging.TestLogger)(t))
		var pos, sizes []int
		for _, u := range p.Parse(in, nil) {
			pos = append(pos, u.Position)
			sizes = append(sizes, u.Size)
		}
		if !cmp.Equal(test.wantPos, pos) || !cmp.Equal(test.wantSizes, sizes) {
			t.Errorf("unexpected units for test %d\nGot positions: %v, sizes: %v\nWant positions: %v, sizes: %v", i, pos, sizes, test.wantPos, test.wantSizes)
		}
	}
}

func TestParseH265SEI(t *testing.T) {
	p := NewParser(Options{UseLongStartCode: true, IsH265: true}, (*logging.TestLogger)(t))
	units, err := p.ParseHex("00000001 4e01 0501aa 80", nil)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("unexpected number of units, got: %d, want: 1", len(units))
	}
	d := units[0].Details
	if d == nil || d.Kind != KindSEI {
		t.Fatalf("expected SEI details, got: %+v", d)
	}
	want := []sei.Message{
		{
			PayloadType:     sei.TypeUserDataUnregistered,
			PayloadSize:     1,
			PayloadTypeName: "USER_DATA_UNREGISTERED",
			Payload:         sei.Payload{Raw: []byte{0xaa}},
		},
	}
	if !cmp.Equal(want, d.SEI) {
		t.Errorf("unexpected SEI messages\n%s", cmp.Diff(want, d.SEI))
	}
}

func TestUnitJSON(t *testing.T) {
	tests := []struct {
		opts Options
		hex  string
		want string
	}{
		{
			opts: Options{UseLongStartCode: true},
			hex:  "00000001 09f0",
			want: `{"start_code_type":"00 00 00 01","position":0,"size":2,"raw_hex":"09 f0",` +
				`"header":{"forbidden_bit":0,"nal_ref_idc":0,"nal_unit_type":9,"type_description":"AUD (Access Unit Delimiter)"},` +
				`"details":{"primary_pic_type":7}}`,
		},
		{
			opts: Options{IsH265: true},
			hex:  "000001 4401 c07380",
			want: `{"start_code_type":"00 00 01","position":0,"size":5,"raw_hex":"44 01 c0 73 80",` +
				`"header":{"forbidden_bit":0,"nal_unit_type":34,"layer_id":0,"temporal_id":1,"type_description":"PPS_NUT (Picture Parameter Set)"},` +
				`"details":{"pps_pic_parameter_set_id":0,"pps_seq_parameter_set_id":0,"dependent_slice_segments_enabled_flag":false,` +
				`"output_flag_present_flag":false,"num_extra_slice_header_bits":0,"sign_data_hiding_enabled_flag":false,` +
				`"cabac_init_present_flag":false,"num_ref_idx_l0_default_active_minus1":0,"num_ref_idx_l1_default_active_minus1":0,` +
				`"init_qp_minus26":0,"constrained_intra_pred_flag":false,"transform_skip_enabled_flag":false,` +
				`"cu_qp_delta_enabled_flag":true,"diff_cu_qp_delta_depth":0}}`,
		},
		{
			opts: Options{},
			hex:  "000001 0b",
			want: `{"start_code_type":"00 00 01","position":0,"size":1,"raw_hex":"0b",` +
				`"header":{"forbidden_bit":0,"nal_ref_idc":0,"nal_unit_type":11,"type_description":"EOB (End Of Bitstream)"}}`,
		},
	}

	for i, test := range tests {
		p := NewParser(test.opts, (*logging.TestLogger)(t))
		units, err := p.ParseHex(test.hex, nil)
		if err != nil {
			t.Fatalf("did not expect error: %v for test: %d", err, i)
		}
		if len(units) != 1 {
			t.Fatalf("unexpected number of units for test: %d, got: %d", i, len(units))
		}
		got, err := json.Marshal(units[0])
		if err != nil {
			t.Fatalf("could not marshal unit for test: %d: %v", i, err)
		}
		if string(got) != test.want {
			t.Errorf("unexpected JSON for test: %d\nGot: %s\nWant: %s", i, got, test.want)
		}
	}
}

func TestDetailsValue(t *testing.T) {
	var d *Details
	if d.Value() != nil {
		t.Error("expected nil value for nil details")
	}
	if newDetails(nil) != nil {
		t.Error("expected nil details for nil payload")
	}

	d = newDetails([]sei.Message(nil))
	if d == nil || d.Kind != KindSEI {
		t.Fatalf("unexpected details: %+v", d)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("unexpected JSON for empty SEI list: %s", b)
	}
}

func TestParseNilLogger(t *testing.T) {
	p := NewParser(Options{IsH265: true}, nil)
	units := p.Parse([]byte{0x00, 0x00, 0x01, 0x40}, nil)
	if len(units) != 1 || units[0].Err == nil {
		t.Fatalf("expected one unit with a diagnostic, got: %+v", units)
	}
}
