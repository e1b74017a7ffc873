/*
NAME
  mpegts.go

DESCRIPTION
  mpegts.go provides extraction of the H.264 or H.265 elementary stream
  carried by an MPEG-TS clip, so that it may be analysed as an Annex B
  bytestream.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mts provides extraction of video elementary streams from MPEG-TS.
package mts

import (
	"sort"

	"github.com/Comcast/gots/packet"
	"github.com/Comcast/gots/pes"
	gotspsi "github.com/Comcast/gots/psi"
	"github.com/pkg/errors"

	"github.com/ausocean/nalu/codec/codecutil"
)

const PacketSize = 188

// PatPid is the program ID of the program association table.
const PatPid = 0

// Elementary stream types, see table 2-34 of ITU-T H.222.0.
const (
	StreamTypeH264 = 0x1b
	StreamTypeH265 = 0x24
)

// Errors returned by Unwrap.
var (
	ErrInvalidLen     = errors.New("MPEG-TS length is not a multiple of 188")
	ErrNoPAT          = errors.New("no PAT found")
	ErrNoPrograms     = errors.New("no programs in PAT")
	ErrNoPMT          = errors.New("no PMT found")
	ErrNoVideoStream  = errors.New("no H.264 or H.265 stream in PMT")
	ErrNoVideoPackets = errors.New("no packets for video stream")
)

// Stream holds a video elementary stream extracted from MPEG-TS.
type Stream struct {
	Codec string // codecutil.H264 or codecutil.H265.
	PID   uint16 // PID of the packets carrying the stream.
	Data  []byte // Concatenated PES payloads, an Annex B bytestream.
}

// Unwrap extracts the first H.264 or H.265 stream of the first program of the
// MPEG-TS clip p. The clip must contain only complete packets and its PAT and
// PMT must precede the stream's packets.
func Unwrap(p []byte) (*Stream, error) {
	if len(p)%PacketSize != 0 {
		return nil, ErrInvalidLen
	}

	pmtPID, err := findPMTPID(p)
	if err != nil {
		return nil, err
	}

	s, err := findVideoStream(p, pmtPID)
	if err != nil {
		return nil, err
	}

	var (
		pkt    packet.Packet
		pesBuf []byte // Holds the PES packet currently being collected.
		found  bool
	)
	flush := func() error {
		if len(pesBuf) == 0 {
			return nil
		}
		h, err := pes.NewPESHeader(pesBuf)
		if err != nil {
			return errors.Wrap(err, "could not parse PES")
		}
		s.Data = append(s.Data, h.Data()...)
		pesBuf = pesBuf[:0]
		return nil
	}

	for i := 0; i < len(p); i += PacketSize {
		copy(pkt[:], p[i:i+PacketSize])
		if pkt.PID() != int(s.PID) {
			continue
		}
		found = true

		payload, err := pkt.Payload()
		if err != nil {
			return nil, errors.Wrap(err, "could not extract payload")
		}

		// A PUSI marks the start of a new PES packet, so the one collected so
		// far is complete.
		if pkt.PayloadUnitStartIndicator() {
			err = flush()
			if err != nil {
				return nil, err
			}
		} else if len(pesBuf) == 0 {
			// Data before the first PES header cannot be placed.
			continue
		}
		pesBuf = append(pesBuf, payload...)
	}
	if !found {
		return nil, ErrNoVideoPackets
	}

	err = flush()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// findPMTPID returns the PMT PID of the program with the lowest program
// number in the first PAT of p.
func findPMTPID(p []byte) (int, error) {
	pkt, ok := findPid(p, PatPid)
	if !ok {
		return 0, ErrNoPAT
	}
	pat, err := gotspsi.NewPAT(pkt[:])
	if err != nil {
		return 0, errors.Wrap(err, "could not parse PAT")
	}

	progs := pat.ProgramMap()
	if len(progs) == 0 {
		return 0, ErrNoPrograms
	}
	nums := make([]int, 0, len(progs))
	for n := range progs {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return progs[nums[0]], nil
}

// findVideoStream returns the first H.264 or H.265 elementary stream
// described by the PMT with PID pmtPID.
func findVideoStream(p []byte, pmtPID int) (*Stream, error) {
	pkt, ok := findPid(p, pmtPID)
	if !ok {
		return nil, ErrNoPMT
	}
	payload, err := pkt.Payload()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get PMT payload")
	}
	pmt, err := gotspsi.NewPMT(payload)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse PMT")
	}

	for _, es := range pmt.ElementaryStreams() {
		switch es.StreamType() {
		case StreamTypeH264:
			return &Stream{Codec: codecutil.H264, PID: uint16(es.ElementaryPid())}, nil
		case StreamTypeH265:
			return &Stream{Codec: codecutil.H265, PID: uint16(es.ElementaryPid())}, nil
		}
	}
	return nil, ErrNoVideoStream
}

// findPid returns the first packet in p with the given PID.
func findPid(p []byte, pid int) (*packet.Packet, bool) {
	var pkt packet.Packet
	for i := 0; i+PacketSize <= len(p); i += PacketSize {
		copy(pkt[:], p[i:i+PacketSize])
		if pkt.PID() == pid {
			return &pkt, true
		}
	}
	return nil, false
}
