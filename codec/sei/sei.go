/*
DESCRIPTION
  sei.go provides parsing of supplemental enhancement information RBSP into
  SEI messages, as defined in section 7.3.2.3 of ITU-T H.264 and section
  7.3.5 of ITU-T H.265.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sei provides parsing of SEI messages shared by H.264 and H.265.
package sei

import (
	"io"

	"github.com/ausocean/nalu/codec/bits"
	"github.com/pkg/errors"
)

// minMessageBits is the number of bits that must remain for another message
// to be read; a message needs at least a payload type and size byte, and a
// lone trailing byte holds only rbsp_trailing_bits.
const minMessageBits = 16

// Message describes a single sei_message.
type Message struct {
	PayloadType     int     `json:"payload_type"`
	PayloadSize     int     `json:"payload_size"`
	PayloadTypeName string  `json:"payload_type_name"`
	Payload         Payload `json:"payload"`

	// Truncated is true if fewer than PayloadSize bytes remained in the RBSP.
	Truncated bool `json:"truncated,omitempty"`
}

// Parse parses the SEI messages of an SEI RBSP. hevc selects the H.265
// layout for payload types whose syntax differs between the codecs. The
// payload of each message is limited to its declared size, so a payload
// parser cannot read into the following message. Messages parsed before an
// error are returned with the error.
func Parse(rbsp []byte, hevc bool) ([]Message, error) {
	br := bits.NewBitReader(rbsp)
	var msgs []Message
	for br.BitsRemaining() > minMessageBits {
		typ, err := readFFCoded(br)
		if err != nil {
			return msgs, errors.Wrap(err, "could not read payload type")
		}
		size, err := readFFCoded(br)
		if err != nil {
			return msgs, errors.Wrap(err, "could not read payload size")
		}

		m := Message{
			PayloadType:     typ,
			PayloadSize:     size,
			PayloadTypeName: TypeName(typ),
		}

		data, err := br.ReadBytes(size)
		switch {
		case err == io.ErrUnexpectedEOF:
			m.Truncated = true
		case err != nil:
			return msgs, errors.Wrap(err, "could not read payload")
		}
		m.Payload = parsePayload(typ, data, hevc)

		msgs = append(msgs, m)
		br.ByteAlign()
	}
	return msgs, nil
}

// readFFCoded reads a value coded as a run of 0xff bytes followed by a final
// byte, summing all bytes, as used by payload type and payload size.
func readFFCoded(br *bits.BitReader) (int, error) {
	var v int
	for br.BitsRemaining() > 0 {
		b, err := br.ReadBits(8)
		if err != nil {
			return 0, err
		}
		v += int(b)
		if b != 0xff {
			break
		}
	}
	return v, nil
}

// parsePayload parses data as a payload of type typ. Payloads of types
// without a parser, or that are too short for their parser, are returned as
// raw bytes.
func parsePayload(typ int, data []byte, hevc bool) Payload {
	r := bits.NewFieldReader(bits.NewBitReader(data))
	var p Payload
	switch typ {
	case TypeBufferingPeriod:
		p.BufferingPeriod = newBufferingPeriod(r, hevc)
	case TypePictureTiming:
		p.PictureTiming = newPictureTiming(r, hevc)
	case TypeRecoveryPoint:
		p.RecoveryPoint = newRecoveryPoint(r)
	case TypeFilmGrainCharacteristics:
		p.FilmGrainCharacteristics = newFilmGrainCharacteristics(r)
	case TypeFramePackingArrangement:
		p.FramePackingArrangement = newFramePackingArrangement(r)
	case TypeDisplayOrientation:
		p.DisplayOrientation = newDisplayOrientation(r)
	case TypeMasteringDisplayColourVolume:
		p.MasteringDisplayColourVolume = newMasteringDisplayColourVolume(r)
	case TypeContentLightLevelInfo:
		p.ContentLightLevelInfo = newContentLightLevelInfo(r)
	default:
		return Payload{Raw: data}
	}
	if r.Err() != nil {
		return Payload{Raw: data}
	}
	return p
}
