/*
DESCRIPTION
  nalunit.go provides parsing of the H.264 NAL unit header and the table of
  NAL unit type descriptions.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import (
	"fmt"

	"github.com/ausocean/nalu/codec/bits"
	"github.com/pkg/errors"
)

// HeaderSize is the size in bytes of an H.264 NAL unit header.
const HeaderSize = 1

// NAL unit types as defined by table 7-1 of the specifications.
const (
	naluTypeUnspecified = iota
	naluTypeSliceNonIDRPicture
	naluTypeSlicePartA
	naluTypeSlicePartB
	naluTypeSlicePartC
	naluTypeSliceIDRPicture
	naluTypeSEI
	naluTypeSPS
	naluTypePPS
	naluTypeAccessUnitDelimiter
	naluTypeEndOfSeq
	naluTypeEndOfStream
	naluTypeFillerData
	naluTypeSPSExtension
	naluTypePrefixNALU
	naluTypeSubsetSPS
	naluTypeAuxiliary          = 19
	naluTypeSliceLayerExtRBSP  = 20
	naluTypeSliceLayerExtRBSP2 = 21
)

// typeDescriptions maps nal_unit_type to a display name.
var typeDescriptions = map[uint8]string{
	naluTypeUnspecified:         "UNSPEC (Unspecified)",
	naluTypeSliceNonIDRPicture:  "NONIDR (Non-IDR)",
	naluTypeSlicePartA:          "DPA (Data Partition A)",
	naluTypeSlicePartB:          "DPB (Data Partition B)",
	naluTypeSlicePartC:          "DPC (Data Partition C)",
	naluTypeSliceIDRPicture:     "IDR (Instantaneous Decoding Refresh)",
	naluTypeSEI:                 "SEI (Supplemental Enhancement Information)",
	naluTypeSPS:                 "SPS (Sequence Parameter Set)",
	naluTypePPS:                 "PPS (Picture Parameter Set)",
	naluTypeAccessUnitDelimiter: "AUD (Access Unit Delimiter)",
	naluTypeEndOfSeq:            "EOS (End Of Sequence)",
	naluTypeEndOfStream:         "EOB (End Of Bitstream)",
	naluTypeFillerData:          "FD (Filler Data)",
	naluTypeSPSExtension:        "SPSE (SPS Extension)",
	naluTypePrefixNALU:          "PREFIX (Prefix NAL)",
	naluTypeSubsetSPS:           "SSPS (Subset SPS)",
	naluTypeAuxiliary:           "AUX (Auxiliary)",
	naluTypeSliceLayerExtRBSP:   "CSE (Coded Slice Extension)",
}

// TypeDescription returns a display name for the NAL unit type typ.
func TypeDescription(typ uint8) string {
	if d, ok := typeDescriptions[typ]; ok {
		return d
	}
	return fmt.Sprintf("Unknown type (%d)", typ)
}

// Header describes a NAL unit header, as defined in section 7.3.1 of the
// specifications.
type Header struct {
	// forbidden_zero_bit, always 0 in a conforming stream.
	ForbiddenBit uint8 `json:"forbidden_bit"`

	// nal_ref_idc, if not 0 the unit is used to reconstruct reference pictures.
	RefIdc uint8 `json:"nal_ref_idc"`

	// nal_unit_type, specifies the type of RBSP data contained in the NAL as
	// defined in Table 7-1.
	Type uint8 `json:"nal_unit_type"`
}

// ParseHeader parses the one byte NAL unit header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	r := bits.NewFieldReader(bits.NewBitReader(b))
	h := Header{
		ForbiddenBit: uint8(r.ReadBits(1)),
		RefIdc:       uint8(r.ReadBits(2)),
		Type:         uint8(r.ReadBits(5)),
	}
	if r.Err() != nil {
		return Header{}, errors.Wrap(r.Err(), "could not read NAL unit header")
	}
	return h, nil
}
