/*
DESCRIPTION
  pps.go provides parsing of an H.264 picture parameter set.

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

// PPS describes a picture parameter set as defined by section 7.3.2.2 of the
// specifications, up to redundant_pic_cnt_present_flag.
type PPS struct {
	ID                                uint64 `json:"pic_parameter_set_id"`
	SPSID                             uint64 `json:"seq_parameter_set_id"`
	EntropyCodingMode                 bool   `json:"entropy_coding_mode_flag"`
	BottomFieldPicOrderInFramePresent bool   `json:"bottom_field_pic_order_in_frame_present_flag"`
	NumSliceGroupsMinus1              uint64 `json:"num_slice_groups_minus1"`
	NumRefIdxL0DefaultActiveMinus1    uint64 `json:"num_ref_idx_l0_default_active_minus1"`
	NumRefIdxL1DefaultActiveMinus1    uint64 `json:"num_ref_idx_l1_default_active_minus1"`
	WeightedPred                      bool   `json:"weighted_pred_flag"`
	WeightedBipred                    uint8  `json:"weighted_bipred_idc"`
	PicInitQpMinus26                  int64  `json:"pic_init_qp_minus26"`
	PicInitQsMinus26                  int64  `json:"pic_init_qs_minus26"`
	ChromaQpIndexOffset               int64  `json:"chroma_qp_index_offset"`
	DeblockingFilterControlPresent    bool   `json:"deblocking_filter_control_present_flag"`
	ConstrainedIntraPred              bool   `json:"constrained_intra_pred_flag"`
	RedundantPicCntPresent            bool   `json:"redundant_pic_cnt_present_flag"`
}

// NewPPS parses a picture parameter set from rbsp, the NAL unit payload
// following the header, and returns as a new PPS. Slice group map syntax is
// not parsed, so num_slice_groups_minus1 is expected to be 0.
func NewPPS(rbsp []byte) (*PPS, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	pps := &PPS{}

	pps.ID = r.ReadUe()
	pps.SPSID = r.ReadUe()
	pps.EntropyCodingMode = r.ReadFlag()
	pps.BottomFieldPicOrderInFramePresent = r.ReadFlag()
	pps.NumSliceGroupsMinus1 = r.ReadUe()
	pps.NumRefIdxL0DefaultActiveMinus1 = r.ReadUe()
	pps.NumRefIdxL1DefaultActiveMinus1 = r.ReadUe()
	pps.WeightedPred = r.ReadFlag()
	pps.WeightedBipred = uint8(r.ReadBits(2))
	pps.PicInitQpMinus26 = r.ReadSe()
	pps.PicInitQsMinus26 = r.ReadSe()
	pps.ChromaQpIndexOffset = r.ReadSe()
	pps.DeblockingFilterControlPresent = r.ReadFlag()
	pps.ConstrainedIntraPred = r.ReadFlag()
	pps.RedundantPicCntPresent = r.ReadFlag()

	if r.Err() != nil {
		return nil, fmt.Errorf("error from fieldReader: %w", r.Err())
	}
	return pps, nil
}
