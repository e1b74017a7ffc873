/*
DESCRIPTION
  slice.go provides parsing of the leading fields of an H.264 slice header.

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

// frameNumBits is the width used for frame_num. The real width is
// log2_max_frame_num_minus4 + 4 from the active SPS, which is not tracked
// between units.
// TODO: thread the active SPS through the analyser so frame_num and the
// fields after it are sized correctly.
const frameNumBits = 16

// Slice types as defined by table 7-6 in specifications.
const (
	sliceTypeP  = 0
	sliceTypeB  = 1
	sliceTypeI  = 2
	sliceTypeSP = 3
	sliceTypeSI = 4
)

var sliceTypeNames = [...]string{
	sliceTypeP:  "P",
	sliceTypeB:  "B",
	sliceTypeI:  "I",
	sliceTypeSP: "SP",
	sliceTypeSI: "SI",
}

// SliceTypeName returns the name of slice_type t. Values 5 to 9 indicate
// that all slices of the picture share the type t-5.
func SliceTypeName(t uint64) string {
	if t > 9 {
		return fmt.Sprintf("Unknown (%d)", t)
	}
	return sliceTypeNames[t%5]
}

// SliceHeader describes the leading syntax elements of a slice header as
// defined in section 7.3.3 of the specifications.
type SliceHeader struct {
	FirstMbInSlice uint64 `json:"first_mb_in_slice"`
	SliceType      uint64 `json:"slice_type"`
	PPSID          uint64 `json:"pic_parameter_set_id"`
	FrameNum       uint64 `json:"frame_num"`
	SliceQPDelta   int64  `json:"slice_qp_delta"`

	// idr_pic_id, present for IDR pictures.
	IDRPicID *uint64 `json:"idr_pic_id,omitempty"`
}

// NewSliceHeader parses a slice header from rbsp, the payload of a NAL unit of
// type naluType, and returns as a new SliceHeader.
func NewSliceHeader(rbsp []byte, naluType uint8) (*SliceHeader, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	h := &SliceHeader{}

	h.FirstMbInSlice = r.ReadUe()
	h.SliceType = r.ReadUe()
	h.PPSID = r.ReadUe()
	h.FrameNum = r.ReadBits(frameNumBits)
	h.SliceQPDelta = r.ReadSe()

	if naluType == naluTypeSliceIDRPicture {
		v := r.ReadUe()
		h.IDRPicID = &v
	}

	if r.Err() != nil {
		return nil, fmt.Errorf("error from fieldReader: %w", r.Err())
	}
	return h, nil
}
