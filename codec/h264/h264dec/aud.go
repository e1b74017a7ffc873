/*
DESCRIPTION
  aud.go provides parsing of an H.264 access unit delimiter.

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

// AUD describes an access unit delimiter as defined by section 7.3.2.4.
type AUD struct {
	// primary_pic_type indicates the slice_type values that may be present in
	// the primary coded picture, see table 7-5.
	PrimaryPicType uint8 `json:"primary_pic_type"`
}

// NewAUD parses an access unit delimiter from rbsp.
func NewAUD(rbsp []byte) (*AUD, error) {
	r := bits.NewFieldReader(bits.NewBitReader(rbsp))
	a := &AUD{PrimaryPicType: uint8(r.ReadBits(3))}
	if r.Err() != nil {
		return nil, fmt.Errorf("error from fieldReader: %w", r.Err())
	}
	return a, nil
}
