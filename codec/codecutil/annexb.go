/*
NAME
  annexb.go

DESCRIPTION
  annexb.go provides start code scanning and NAL unit segmentation of Annex B
  bytestreams as specified in Annex B of ITU-T H.264 and ITU-T H.265.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package codecutil provides utilities shared by the codec packages, namely
// Annex B start code scanning and the list of supported codecs.
package codecutil

// Start code lengths.
const (
	ShortStartCodeLen = 3 // 00 00 01
	LongStartCodeLen  = 4 // 00 00 00 01
)

// Start code display names.
const (
	ShortStartCode = "00 00 01"
	LongStartCode  = "00 00 00 01"
)

// StartCodeName returns the display name of a start code of length n.
func StartCodeName(n int) string {
	if n == LongStartCodeLen {
		return LongStartCode
	}
	return ShortStartCode
}

// FindStartCode returns the position and length of the first start code in
// buf at or after from. Only one start code width is searched for; if long is
// true only 00 00 00 01 is matched, otherwise only 00 00 01. ok is false if
// no start code is found.
func FindStartCode(buf []byte, from int, long bool) (pos, n int, ok bool) {
	if from < 0 {
		from = 0
	}
	n = ShortStartCodeLen
	if long {
		n = LongStartCodeLen
	}
	for i := from; i <= len(buf)-n; i++ {
		if buf[i] != 0 || buf[i+1] != 0 {
			continue
		}
		if long {
			if buf[i+2] == 0 && buf[i+3] == 1 {
				return i, n, true
			}
			continue
		}
		if buf[i+2] == 1 {
			return i, n, true
		}
	}
	return 0, 0, false
}

// Span locates one NAL unit within a bytestream.
type Span struct {
	Pos          int // Position of the unit's start code.
	StartCodeLen int // Length of the start code, 3 or 4.
	End          int // Position immediately after the unit.
}

// Start returns the position of the first byte after the start code.
func (s Span) Start() int { return s.Pos + s.StartCodeLen }

// Size returns the size of the unit excluding its start code.
func (s Span) Size() int { return s.End - s.Start() }

// Segment splits buf into NAL units. Each unit runs from its start code up to
// the next start code of the same width, or the end of buf for the final
// unit. Two adjacent start codes produce a unit of zero size. Bytes before
// the first start code are ignored.
func Segment(buf []byte, long bool) []Span {
	var spans []Span
	var off int
	for off < len(buf) {
		pos, n, ok := FindStartCode(buf, off, long)
		if !ok {
			break
		}
		end := len(buf)
		if next, _, ok := FindStartCode(buf, pos+n, long); ok {
			end = next
		}
		spans = append(spans, Span{Pos: pos, StartCodeLen: n, End: end})
		off = end
	}
	return spans
}
