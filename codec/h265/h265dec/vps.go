/*
DESCRIPTION
  vps.go provides parsing of an H.265 video parameter set.

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

// VPS describes the leading fields of a video parameter set, as defined in
// section 7.3.2.1 of ITU-T H.265, up to and including the timing
// information.
type VPS struct {
	VPSID              uint8             `json:"vps_video_parameter_set_id"`
	BaseLayerInternal  bool              `json:"vps_base_layer_internal_flag"`
	BaseLayerAvailable bool              `json:"vps_base_layer_available_flag"`
	MaxLayersMinus1    uint8             `json:"vps_max_layers_minus1"`
	MaxSubLayersMinus1 uint8             `json:"vps_max_sub_layers_minus1"`
	TemporalIDNesting  bool              `json:"vps_temporal_id_nesting_flag"`
	Reserved           uint16            `json:"vps_reserved_0xffff_16bits"`
	ProfileTierLevel   *ProfileTierLevel `json:"profile_tier_level"`

	SubLayerOrderingInfoPresent bool `json:"vps_sub_layer_ordering_info_present_flag"`

	// One entry per sub-layer.
	MaxDecPicBufferingMinus1 []uint64 `json:"vps_max_dec_pic_buffering_minus1"`
	MaxNumReorderPics        []uint64 `json:"vps_max_num_reorder_pics"`
	MaxLatencyIncreasePlus1  []uint64 `json:"vps_max_latency_increase_plus1"`

	MaxLayerID         uint8  `json:"vps_max_layer_id"`
	NumLayerSetsMinus1 uint64 `json:"vps_num_layer_sets_minus1"`
	TimingInfoPresent  bool   `json:"vps_timing_info_present_flag"`

	// Present when TimingInfoPresent is set.
	NumUnitsInTick          *uint32 `json:"vps_num_units_in_tick,omitempty"`
	TimeScale               *uint32 `json:"vps_time_scale,omitempty"`
	POCProportionalToTiming *bool   `json:"vps_poc_proportional_to_timing_flag,omitempty"`

	// Present when POCProportionalToTiming is set.
	NumTicksPOCDiffOneMinus1 *uint64 `json:"vps_num_ticks_poc_diff_one_minus1,omitempty"`
}

// NewVPS parses a video parameter set from rbsp, the NAL unit payload
// following the header. The profile_tier_level is read with no sub-layers.
func NewVPS(rbsp []byte) (*VPS, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	vps := &VPS{
		VPSID:              uint8(r.ReadBits(4)),
		BaseLayerInternal:  r.ReadFlag(),
		BaseLayerAvailable: r.ReadFlag(),
		MaxLayersMinus1:    uint8(r.ReadBits(6)),
		MaxSubLayersMinus1: uint8(r.ReadBits(3)),
		TemporalIDNesting:  r.ReadFlag(),
		Reserved:           uint16(r.ReadBits(16)),
	}
	vps.ProfileTierLevel = NewProfileTierLevel(r, 0)
	vps.SubLayerOrderingInfoPresent = r.ReadFlag()

	n := int(vps.MaxSubLayersMinus1) + 1
	vps.MaxDecPicBufferingMinus1 = make([]uint64, n)
	vps.MaxNumReorderPics = make([]uint64, n)
	vps.MaxLatencyIncreasePlus1 = make([]uint64, n)
	for i := 0; i < n; i++ {
		vps.MaxDecPicBufferingMinus1[i] = r.ReadUe()
		vps.MaxNumReorderPics[i] = r.ReadUe()
		vps.MaxLatencyIncreasePlus1[i] = r.ReadUe()
	}

	vps.MaxLayerID = uint8(r.ReadBits(6))
	vps.NumLayerSetsMinus1 = r.ReadUe()
	vps.TimingInfoPresent = r.ReadFlag()
	if vps.TimingInfoPresent {
		units, scale := uint32(r.ReadBits(32)), uint32(r.ReadBits(32))
		prop := r.ReadFlag()
		vps.NumUnitsInTick = &units
		vps.TimeScale = &scale
		vps.POCProportionalToTiming = &prop
		if prop {
			ticks := r.ReadUe()
			vps.NumTicksPOCDiffOneMinus1 = &ticks
		}
	}

	if r.Err() != nil {
		return nil, errors.Wrap(r.Err(), "could not read video parameter set")
	}
	return vps, nil
}
