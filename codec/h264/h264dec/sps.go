/*
DESCRIPTION
  sps.go provides parsing of the leading fields of an H.264 sequence
  parameter set.

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
)

// SPS describes a sequence parameter set as defined by section 7.3.2.1.1 in
// the Specifications. Only the fields common to all profiles are parsed;
// optional fields are nil when they are not signalled.
type SPS struct {
	// pofile_idc and level_idc indicate the profile and level to which the
	// coded video sequence conforms.
	ProfileIDC uint8 `json:"profile_idc"`

	// The constraint_setx_flag flags and the two reserved bits following them.
	ConstraintSetFlags uint8 `json:"constraint_set_flags"`

	LevelIDC uint8 `json:"level_idc"`

	// seq_parameter_set_id identifies this sequence parameter set.
	SPSID uint64 `json:"seq_parameter_set_id"`

	// log2_max_frame_num_minus4 allows for derivation of MaxFrameNum using eq 7-10.
	Log2MaxFrameNumMinus4 uint64 `json:"log2_max_frame_num_minus4"`

	// pic_order_cnt_type specifies the method to decode picture order count.
	PicOrderCntType uint64 `json:"pic_order_cnt_type"`

	// log2_max_pic_order_cnt_lsb_minus4, present when pic_order_cnt_type is 0.
	Log2MaxPicOrderCntLSBMinus4 *uint64 `json:"log2_max_pic_order_cnt_lsb_minus4,omitempty"`

	MaxNumRefFrames            uint64 `json:"max_num_ref_frames"`
	GapsInFrameNumValueAllowed bool   `json:"gaps_in_frame_num_value_allowed_flag"`

	// pic_width_in_mbs_minus1 plus 1 specifies the width of each decoded
	// picture in units of macroblocks.
	PicWidthInMBSMinus1 uint64 `json:"pic_width_in_mbs_minus1"`

	// pic_height_in_map_units_minus1 plus 1 specifies the height in slice group
	// map units of a decoded frame or field.
	PicHeightInMapUnitsMinus1 uint64 `json:"pic_height_in_map_units_minus1"`

	FrameMBSOnly       bool `json:"frame_mbs_only_flag"`
	Direct8x8Inference bool `json:"direct_8x8_inference_flag"`
	FrameCropping      bool `json:"frame_cropping_flag"`

	// Frame cropping offsets, present when frame_cropping_flag is set.
	FrameCropLeftOffset   *uint64 `json:"frame_crop_left_offset,omitempty"`
	FrameCropRightOffset  *uint64 `json:"frame_crop_right_offset,omitempty"`
	FrameCropTopOffset    *uint64 `json:"frame_crop_top_offset,omitempty"`
	FrameCropBottomOffset *uint64 `json:"frame_crop_bottom_offset,omitempty"`
}

// NewSPS parses a sequence parameter set from rbsp, the NAL unit payload
// following the header, and returns as a new SPS.
//
// The fields are read in the order profile, constraint flags, level, ids and
// picture dimensions, then the three trailing flags, then the conditional
// pic order count and cropping fields. This is the layout used by the streams
// this analyser targets and does not handle the high profile chroma fields.
func NewSPS(rbsp []byte) (*SPS, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	sps := &SPS{}

	sps.ProfileIDC = uint8(r.ReadBits(8))
	sps.ConstraintSetFlags = uint8(r.ReadBits(8))
	sps.LevelIDC = uint8(r.ReadBits(8))
	sps.SPSID = r.ReadUe()
	sps.Log2MaxFrameNumMinus4 = r.ReadUe()
	sps.PicOrderCntType = r.ReadUe()
	sps.MaxNumRefFrames = r.ReadUe()
	sps.GapsInFrameNumValueAllowed = r.ReadFlag()
	sps.PicWidthInMBSMinus1 = r.ReadUe()
	sps.PicHeightInMapUnitsMinus1 = r.ReadUe()
	sps.FrameMBSOnly = r.ReadFlag()
	sps.Direct8x8Inference = r.ReadFlag()
	sps.FrameCropping = r.ReadFlag()

	if sps.PicOrderCntType == 0 {
		v := r.ReadUe()
		sps.Log2MaxPicOrderCntLSBMinus4 = &v
	}

	if sps.FrameCropping {
		left, right, top, bottom := r.ReadUe(), r.ReadUe(), r.ReadUe(), r.ReadUe()
		sps.FrameCropLeftOffset = &left
		sps.FrameCropRightOffset = &right
		sps.FrameCropTopOffset = &top
		sps.FrameCropBottomOffset = &bottom
	}

	if r.Err() != nil {
		return nil, fmt.Errorf("error from fieldReader: %w", r.Err())
	}
	return sps, nil
}

// Width returns the width of the coded picture in luma samples, before
// cropping.
func (s *SPS) Width() int {
	return int(s.PicWidthInMBSMinus1+1) * 16
}

// Height returns the height of the coded frame in luma samples, before
// cropping. Field coded streams have two map units per macroblock pair.
func (s *SPS) Height() int {
	h := int(s.PicHeightInMapUnitsMinus1+1) * 16
	if !s.FrameMBSOnly {
		h *= 2
	}
	return h
}
