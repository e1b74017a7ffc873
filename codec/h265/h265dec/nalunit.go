/*
DESCRIPTION
  nalunit.go provides parsing of the H.265 NAL unit header and the table of
  NAL unit type descriptions.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h265dec

import (
	"fmt"

	"github.com/ausocean/nalu/codec/bits"
	"github.com/pkg/errors"
)

// HeaderSize is the size in bytes of an H.265 NAL unit header.
const HeaderSize = 2

// NAL unit types, see table 7-1 of ITU-T H.265.
const (
	naluTypeTrailN    = 0
	naluTypeTrailR    = 1
	naluTypeBLAWLP    = 16
	naluTypeBLAWRADL  = 17
	naluTypeBLANLP    = 18
	naluTypeIDRWRADL  = 19
	naluTypeIDRNLP    = 20
	naluTypeCRA       = 21
	naluTypeVPS       = 32
	naluTypeSPS       = 33
	naluTypePPS       = 34
	naluTypeAUD       = 35
	naluTypeEOS       = 36
	naluTypeEOB       = 37
	naluTypeFD        = 38
	naluTypePrefixSEI = 39
	naluTypeSuffixSEI = 40
)

var typeDescriptions = map[uint8]string{
	naluTypeTrailN:    "TRAIL_N (Trailing, Non-Reference)",
	naluTypeTrailR:    "TRAIL_R (Trailing, Reference)",
	naluTypeBLAWLP:    "BLA_W_LP (Broken Link Access with Leading Pictures)",
	naluTypeBLAWRADL:  "BLA_W_RADL (BLA with Random Access Decodable Leading)",
	naluTypeBLANLP:    "BLA_N_LP (BLA without Leading Pictures)",
	naluTypeIDRWRADL:  "IDR_W_RADL (IDR with Random Access Decodable Leading)",
	naluTypeIDRNLP:    "IDR_N_LP (IDR without Leading Pictures)",
	naluTypeCRA:       "CRA_NUT (Clean Random Access)",
	naluTypeVPS:       "VPS_NUT (Video Parameter Set)",
	naluTypeSPS:       "SPS_NUT (Sequence Parameter Set)",
	naluTypePPS:       "PPS_NUT (Picture Parameter Set)",
	naluTypeAUD:       "AUD_NUT (Access Unit Delimiter)",
	naluTypeEOS:       "EOS_NUT (End Of Sequence)",
	naluTypeEOB:       "EOB_NUT (End Of Bitstream)",
	naluTypeFD:        "FD_NUT (Filler Data)",
	naluTypePrefixSEI: "PREFIX_SEI_NUT (Prefix SEI)",
	naluTypeSuffixSEI: "SUFFIX_SEI_NUT (Suffix SEI)",
}

// TypeDescription returns a display name for the NAL unit type typ.
func TypeDescription(typ uint8) string {
	if d, ok := typeDescriptions[typ]; ok {
		return d
	}
	return fmt.Sprintf("Unknown type (%d)", typ)
}

// Header describes an H.265 NAL unit header, as defined in section 7.3.1.2
// of ITU-T H.265.
type Header struct {
	ForbiddenBit uint8 `json:"forbidden_bit"`
	Type         uint8 `json:"nal_unit_type"`

	// nuh_layer_id, 0 for single layer streams.
	LayerID uint8 `json:"layer_id"`

	// nuh_temporal_id_plus1 as coded; the temporal id is one less.
	TemporalID uint8 `json:"temporal_id"`
}

// ParseHeader parses the two byte NAL unit header at the start of b. If b is
// too short an error is returned with the fields that could be read, so a
// one byte unit still reports its forbidden bit and type.
func ParseHeader(b []byte) (Header, error) {
	r := bits.NewFieldReader(bits.NewBitReader(b))
	h := Header{
		ForbiddenBit: uint8(r.ReadBits(1)),
		Type:         uint8(r.ReadBits(6)),
		LayerID:      uint8(r.ReadBits(6)),
		TemporalID:   uint8(r.ReadBits(3)),
	}
	if r.Err() != nil {
		// Fields read before the failure are kept; the rest are zero.
		return h, errors.Wrap(r.Err(), "could not read NAL unit header")
	}
	return h, nil
}
