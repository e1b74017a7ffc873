/*
DESCRIPTION
  parser.go provides the NAL unit parsing pipeline, which segments an Annex B
  bytestream into NAL units and parses the header and payload of each.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package analyser provides analysis of H.264 and H.265 Annex B bytestreams
// into ordered NAL unit records, and a worker that streams the records of
// one analysis over a channel.
package analyser

import (
	"encoding/hex"
	"io"
	"strings"
	"unicode"

	"github.com/ausocean/nalu/codec/codecutil"
	"github.com/ausocean/nalu/codec/h264/h264dec"
	"github.com/ausocean/nalu/codec/h265/h265dec"
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"
)

// ErrOddHexLength is returned when a hex string has an odd number of digits
// once whitespace is removed.
var ErrOddHexLength = errors.New("invalid hex string length")

// Parser analyses Annex B bytestreams. A Parser holds no state between calls
// and may be used by multiple goroutines.
type Parser struct {
	opts Options
	log  logging.Logger
}

// NewParser returns a new Parser using the given options. Units that cannot
// be parsed are reported to l at warning level. If l is nil nothing is
// logged.
func NewParser(opts Options, l logging.Logger) *Parser {
	if l == nil {
		l = discardLogger()
	}
	return &Parser{opts: opts, log: l}
}

// discardLogger returns a logger that writes nowhere.
func discardLogger() logging.Logger {
	return logging.New(logging.Fatal, io.Discard, true)
}

// Parse segments buf into NAL units and parses each. Units are returned in
// the order they appear in buf. If fn is not nil it is called with each unit
// and its position as the unit is produced, before the next unit is parsed.
// A unit that cannot be parsed does not stop parsing; its Details are nil and
// its Err is set.
func (p *Parser) Parse(buf []byte, fn func(u Unit, pos int)) []Unit {
	spans := codecutil.Segment(buf, p.opts.UseLongStartCode)
	units := make([]Unit, 0, len(spans))
	for _, s := range spans {
		u := p.parseUnit(buf, s)
		if fn != nil {
			fn(u, u.Position)
		}
		units = append(units, u)
	}
	p.log.Debug("parsed bytestream", "bytes", len(buf), "units", len(units))
	return units
}

// ParseHex decodes the hex string s, which may contain whitespace, and
// parses the result as with Parse. ErrOddHexLength is returned if s does not
// hold a whole number of bytes, in which case no units are produced.
func (p *Parser) ParseHex(s string, fn func(u Unit, pos int)) ([]Unit, error) {
	buf, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return p.Parse(buf, fn), nil
}

// DecodeHex decodes a hex string after removing any whitespace from it.
func DecodeHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, ErrOddHexLength
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode hex string")
	}
	return buf, nil
}

// parseUnit builds the unit located by s in buf.
func (p *Parser) parseUnit(buf []byte, s codecutil.Span) Unit {
	raw := buf[s.Start():s.End]
	u := Unit{
		StartCode: codecutil.StartCodeName(s.StartCodeLen),
		Position:  s.Pos,
		Size:      s.Size(),
		Raw:       raw,
		RawHex:    codecutil.HexString(raw),
	}

	// Adjacent start codes give an empty unit, which is reported with a zero
	// header and no details.
	if len(raw) == 0 {
		u.Header = p.zeroHeader()
		return u
	}

	var (
		payload interface{}
		err     error
	)
	if p.opts.IsH265 {
		var h h265dec.Header
		h, err = h265dec.ParseHeader(raw)
		u.Header = Header{H265: &h, TypeDescription: h265dec.TypeDescription(h.Type)}
		if err == nil {
			payload, err = h265dec.ParsePayload(h.Type, raw[h265dec.HeaderSize:])
		}
	} else {
		var h h264dec.Header
		h, err = h264dec.ParseHeader(raw)
		u.Header = Header{H264: &h, TypeDescription: h264dec.TypeDescription(h.Type)}
		if err == nil {
			payload, err = h264dec.ParsePayload(h.Type, raw[h264dec.HeaderSize:])
		}
	}

	if err != nil {
		u.Err = err
		u.Diagnostic = err.Error()
		p.log.Warning("could not parse unit", "position", u.Position, "size", u.Size, "error", err)
		return u
	}
	u.Details = newDetails(payload)
	return u
}

func (p *Parser) zeroHeader() Header {
	if p.opts.IsH265 {
		return Header{H265: &h265dec.Header{}, TypeDescription: h265dec.TypeDescription(0)}
	}
	return Header{H264: &h264dec.Header{}, TypeDescription: h264dec.TypeDescription(0)}
}
