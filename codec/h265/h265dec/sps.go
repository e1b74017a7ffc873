/*
DESCRIPTION
  sps.go provides parsing of the leading fields of an H.265 sequence
  parameter set.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h265dec

import (
	"github.com/ausocean/nalu/codec/bits"
	"github.com/pkg/errors"
)

// SPS describes the leading fields of a sequence parameter set, as defined
// in section 7.3.2.2 of ITU-T H.265.
type SPS struct {
	VPSID              uint8          `json:"sps_video_parameter_set_id"`
	MaxSubLayersMinus1 uint8          `json:"sps_max_sub_layers_minus1"`
	TemporalIDNesting  bool           `json:"sps_temporal_id_nesting_flag"`
	ProfileTierLevel   GeneralProfile `json:"profile_tier_level"`
	SPSID              uint64         `json:"sps_seq_parameter_set_id"`
	ChromaFormatIDC    uint64         `json:"chroma_format_idc"`
	PicWidth           uint64         `json:"pic_width_in_luma_samples"`
	PicHeight          uint64         `json:"pic_height_in_luma_samples"`
	ConformanceWindow  bool           `json:"conformance_window_flag"`

	// Conformance window offsets, present when ConformanceWindow is set.
	ConfWinLeftOffset   *uint64 `json:"conf_win_left_offset,omitempty"`
	ConfWinRightOffset  *uint64 `json:"conf_win_right_offset,omitempty"`
	ConfWinTopOffset    *uint64 `json:"conf_win_top_offset,omitempty"`
	ConfWinBottomOffset *uint64 `json:"conf_win_bottom_offset,omitempty"`
}

// NewSPS parses a sequence parameter set from rbsp, the NAL unit payload
// following the header.
//
// Only the general profile space, tier, profile and level are read in place
// of the full profile_tier_level; the compatibility and constraint flags and
// any sub-layer fields are not expected in the bitstream.
func NewSPS(rbsp []byte) (*SPS, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	sps := &SPS{
		VPSID:              uint8(r.ReadBits(4)),
		MaxSubLayersMinus1: uint8(r.ReadBits(3)),
		TemporalIDNesting:  r.ReadFlag(),
		ProfileTierLevel:   newGeneralProfile(r),
		SPSID:              r.ReadUe(),
		ChromaFormatIDC:    r.ReadUe(),
		PicWidth:           r.ReadUe(),
		PicHeight:          r.ReadUe(),
		ConformanceWindow:  r.ReadFlag(),
	}

	if sps.ConformanceWindow {
		left, right, top, bottom := r.ReadUe(), r.ReadUe(), r.ReadUe(), r.ReadUe()
		sps.ConfWinLeftOffset = &left
		sps.ConfWinRightOffset = &right
		sps.ConfWinTopOffset = &top
		sps.ConfWinBottomOffset = &bottom
	}

	if r.Err() != nil {
		return nil, errors.Wrap(r.Err(), "could not read sequence parameter set")
	}
	return sps, nil
}
