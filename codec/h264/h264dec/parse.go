/*
NAME
  parse.go

DESCRIPTION
  parse.go provides selection of the payload parser for an H.264 NAL unit.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package h264dec provides parsing of H.264 NAL unit headers and of the
// syntax of parameter set, slice header, access unit delimiter and SEI NAL
// unit payloads.
package h264dec

import (
	"github.com/ausocean/nalu/codec/sei"
	"github.com/pkg/errors"
)

// ParsePayload parses rbsp, the bytes of a NAL unit of type naluType following
// the header. The result is one of *SliceHeader, []sei.Message, *SPS, *PPS or
// *AUD. Both results are nil for types that have no payload parser.
func ParsePayload(naluType uint8, rbsp []byte) (interface{}, error) {
	var (
		v   interface{}
		err error
	)
	switch naluType {
	case naluTypeSliceNonIDRPicture, naluTypeSliceIDRPicture:
		v, err = NewSliceHeader(rbsp, naluType)
	case naluTypeSEI:
		v, err = sei.Parse(rbsp, false)
	case naluTypeSPS:
		v, err = NewSPS(rbsp)
	case naluTypePPS:
		v, err = NewPPS(rbsp)
	case naluTypeAccessUnitDelimiter:
		v, err = NewAUD(rbsp)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", TypeDescription(naluType))
	}
	return v, nil
}
