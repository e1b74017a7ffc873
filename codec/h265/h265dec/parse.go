/*
DESCRIPTION
  parse.go provides selection of the payload parser for an H.265 NAL unit.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package h265dec provides parsing of H.265 NAL unit headers and of the
// syntax of parameter set and SEI NAL unit payloads.
package h265dec

import (
	"github.com/ausocean/nalu/codec/sei"
	"github.com/pkg/errors"
)

// ParsePayload parses rbsp, the bytes of a NAL unit of type naluType following
// the header. The result is one of *VPS, *SPS, *PPS or []sei.Message, or nil
// for types without a payload parser.
func ParsePayload(naluType uint8, rbsp []byte) (interface{}, error) {
	var (
		v   interface{}
		err error
	)
	switch naluType {
	case naluTypeVPS:
		v, err = NewVPS(rbsp)
	case naluTypeSPS:
		v, err = NewSPS(rbsp)
	case naluTypePPS:
		v, err = NewPPS(rbsp)
	case naluTypePrefixSEI, naluTypeSuffixSEI:
		v, err = sei.Parse(rbsp, true)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", TypeDescription(naluType))
	}
	return v, nil
}
