/*
DESCRIPTION
  pps.go provides parsing of the leading fields of an H.265 picture
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

// PPS describes the leading fields of a picture parameter set, as defined in
// section 7.3.2.3 of ITU-T H.265.
type PPS struct {
	PPSID                          uint64 `json:"pps_pic_parameter_set_id"`
	SPSID                          uint64 `json:"pps_seq_parameter_set_id"`
	DependentSliceSegmentsEnabled  bool   `json:"dependent_slice_segments_enabled_flag"`
	OutputFlagPresent              bool   `json:"output_flag_present_flag"`
	NumExtraSliceHeaderBits        uint8  `json:"num_extra_slice_header_bits"`
	SignDataHidingEnabled          bool   `json:"sign_data_hiding_enabled_flag"`
	CABACInitPresent               bool   `json:"cabac_init_present_flag"`
	NumRefIdxL0DefaultActiveMinus1 uint64 `json:"num_ref_idx_l0_default_active_minus1"`
	NumRefIdxL1DefaultActiveMinus1 uint64 `json:"num_ref_idx_l1_default_active_minus1"`
	InitQPMinus26                  int64  `json:"init_qp_minus26"`
	ConstrainedIntraPred           bool   `json:"constrained_intra_pred_flag"`
	TransformSkipEnabled           bool   `json:"transform_skip_enabled_flag"`
	CUQPDeltaEnabled               bool   `json:"cu_qp_delta_enabled_flag"`

	// Present when CUQPDeltaEnabled is set.
	DiffCUQPDeltaDepth *uint64 `json:"diff_cu_qp_delta_depth,omitempty"`
}

// NewPPS parses a picture parameter set from rbsp, the NAL unit payload
// following the header.
func NewPPS(rbsp []byte) (*PPS, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	pps := &PPS{
		PPSID:                          r.ReadUe(),
		SPSID:                          r.ReadUe(),
		DependentSliceSegmentsEnabled:  r.ReadFlag(),
		OutputFlagPresent:              r.ReadFlag(),
		NumExtraSliceHeaderBits:        uint8(r.ReadBits(3)),
		SignDataHidingEnabled:          r.ReadFlag(),
		CABACInitPresent:               r.ReadFlag(),
		NumRefIdxL0DefaultActiveMinus1: r.ReadUe(),
		NumRefIdxL1DefaultActiveMinus1: r.ReadUe(),
		InitQPMinus26:                  r.ReadSe(),
		ConstrainedIntraPred:           r.ReadFlag(),
		TransformSkipEnabled:           r.ReadFlag(),
		CUQPDeltaEnabled:               r.ReadFlag(),
	}
	if pps.CUQPDeltaEnabled {
		depth := r.ReadUe()
		pps.DiffCUQPDeltaDepth = &depth
	}
	if r.Err() != nil {
		return nil, errors.Wrap(r.Err(), "could not read picture parameter set")
	}
	return pps, nil
}
