/*
DESCRIPTION
  unit.go provides the NAL unit record produced by the analyser, along with
  its codec specific header and parsed payload details.

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
	"fmt"

	"github.com/ausocean/nalu/codec/codecutil"
	"github.com/ausocean/nalu/codec/h264/h264dec"
	"github.com/ausocean/nalu/codec/h265/h265dec"
	"github.com/ausocean/nalu/codec/sei"
)

// Options selects how a bytestream is analysed.
type Options struct {
	// UseLongStartCode selects scanning for 00 00 00 01 start codes rather
	// than 00 00 01. Only one width is ever matched.
	UseLongStartCode bool

	// IsH265 selects H.265 headers and payload parsers instead of H.264.
	IsH265 bool
}

// Unit describes a single NAL unit found in a bytestream.
type Unit struct {
	// StartCode is the display form of the start code preceding the unit,
	// "00 00 01" or "00 00 00 01".
	StartCode string `json:"start_code_type"`

	// Position is the offset of the unit's start code in the bytestream.
	Position int `json:"position"`

	// Size is the number of header and payload bytes, excluding the start code.
	Size int `json:"size"`

	Raw    []byte `json:"-"`
	RawHex string `json:"raw_hex"`
	Header Header `json:"header"`

	// Details holds the parsed payload, or nil if the unit type has no payload
	// parser or the payload could not be parsed.
	Details *Details `json:"details,omitempty"`

	// Err holds the reason the header or payload of the unit could not be
	// parsed. Diagnostic is its message.
	Err        error  `json:"-"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// End returns the position immediately after the unit.
func (u Unit) End() int {
	n := codecutil.ShortStartCodeLen
	if u.StartCode == codecutil.LongStartCode {
		n = codecutil.LongStartCodeLen
	}
	return u.Position + n + u.Size
}

// Header holds the header of a unit for one of the two codecs. Exactly one of
// H264 and H265 is set.
type Header struct {
	H264            *h264dec.Header
	H265            *h265dec.Header
	TypeDescription string
}

// Type returns the nal_unit_type of the header.
func (h Header) Type() uint8 {
	switch {
	case h.H264 != nil:
		return h.H264.Type
	case h.H265 != nil:
		return h.H265.Type
	}
	return 0
}

// MarshalJSON encodes the fields of the set codec header followed by the type
// description.
func (h Header) MarshalJSON() ([]byte, error) {
	switch {
	case h.H264 != nil:
		return json.Marshal(struct {
			h264dec.Header
			TypeDescription string `json:"type_description"`
		}{*h.H264, h.TypeDescription})
	case h.H265 != nil:
		return json.Marshal(struct {
			h265dec.Header
			TypeDescription string `json:"type_description"`
		}{*h.H265, h.TypeDescription})
	}
	return []byte("null"), nil
}

// Kind identifies the payload held by Details.
type Kind uint8

// Payload kinds.
const (
	KindNone Kind = iota
	KindSPS
	KindPPS
	KindVPS
	KindSliceHeader
	KindAUD
	KindSEI
)

var kindNames = [...]string{
	KindNone:        "none",
	KindSPS:         "SPS",
	KindPPS:         "PPS",
	KindVPS:         "VPS",
	KindSliceHeader: "slice header",
	KindAUD:         "AUD",
	KindSEI:         "SEI",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Details holds the parsed payload of a unit. Kind says which field is set;
// the SPS and PPS fields of the codec that was analysed are the only ones
// used.
type Details struct {
	Kind Kind

	H264SPS     *h264dec.SPS
	H264PPS     *h264dec.PPS
	SliceHeader *h264dec.SliceHeader
	AUD         *h264dec.AUD

	H265VPS *h265dec.VPS
	H265SPS *h265dec.SPS
	H265PPS *h265dec.PPS

	SEI []sei.Message
}

// newDetails wraps a value returned by a codec payload parser. It returns nil
// for values of any other type, including nil.
func newDetails(v interface{}) *Details {
	switch v := v.(type) {
	case *h264dec.SPS:
		return &Details{Kind: KindSPS, H264SPS: v}
	case *h264dec.PPS:
		return &Details{Kind: KindPPS, H264PPS: v}
	case *h264dec.SliceHeader:
		return &Details{Kind: KindSliceHeader, SliceHeader: v}
	case *h264dec.AUD:
		return &Details{Kind: KindAUD, AUD: v}
	case *h265dec.VPS:
		return &Details{Kind: KindVPS, H265VPS: v}
	case *h265dec.SPS:
		return &Details{Kind: KindSPS, H265SPS: v}
	case *h265dec.PPS:
		return &Details{Kind: KindPPS, H265PPS: v}
	case []sei.Message:
		return &Details{Kind: KindSEI, SEI: v}
	}
	return nil
}

// Value returns the payload structure held by d, or nil.
func (d *Details) Value() interface{} {
	if d == nil {
		return nil
	}
	switch d.Kind {
	case KindSPS:
		if d.H265SPS != nil {
			return d.H265SPS
		}
		return d.H264SPS
	case KindPPS:
		if d.H265PPS != nil {
			return d.H265PPS
		}
		return d.H264PPS
	case KindVPS:
		return d.H265VPS
	case KindSliceHeader:
		return d.SliceHeader
	case KindAUD:
		return d.AUD
	case KindSEI:
		if d.SEI == nil {
			return []sei.Message{}
		}
		return d.SEI
	}
	return nil
}

// MarshalJSON encodes the payload structure alone.
func (d *Details) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value())
}
