/*
DESCRIPTION
  bitreader.go provides a bit reader implementation that reads fixed width
  and Exp-Golomb coded fields from a byte slice.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a bit reader implementation that can read, peek and
// skip bits of a byte slice, including the Exp-Golomb coded syntax elements
// used by H.264 and H.265.
package bits

import (
	"io"

	"github.com/pkg/errors"
)

// maxLeadingZeros bounds the prefix of an Exp-Golomb code so that a run of
// zero bytes cannot produce an unbounded read.
const maxLeadingZeros = 32

// ErrInvalidReadSize is returned when a read of more than 64 bits, or a
// negative number of bits, is requested.
var ErrInvalidReadSize = errors.New("invalid read size")

// BitReader is a bit reader that provides methods for reading bits from a
// byte slice. The zero value is an empty reader.
type BitReader struct {
	buf []byte
	pos int // Cursor position in bits.
}

// NewBitReader returns a new BitReader with its cursor at the first bit of
// buf. buf is not copied and must not be modified while the reader is in use.
func NewBitReader(buf []byte) *BitReader {
	return &BitReader{buf: buf}
}

// ReadBits reads n bits from the source and returns them the least-significant
// part of a uint64.
// For example, with a source as []byte{0x8f,0xe3} (1000 1111, 1110 0011), we
// would get the following results for consequtive reads with n values:
// n = 4, res = 0x8 (1000)
// n = 2, res = 0x3 (0011)
// n = 4, res = 0xf (1111)
// n = 6, res = 0x23 (0010 0011)
// If fewer than n bits remain, io.ErrUnexpectedEOF is returned and the cursor
// does not move.
func (br *BitReader) ReadBits(n int) (uint64, error) {
	v, err := br.PeekBits(n)
	if err != nil {
		return 0, err
	}
	br.pos += n
	return v, nil
}

// PeekBits provides the next n bits returning them in the least-significant
// part of a uint64, without advancing through the source.
func (br *BitReader) PeekBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, ErrInvalidReadSize
	}
	if n > br.BitsRemaining() {
		return 0, io.ErrUnexpectedEOF
	}

	var v uint64
	pos := br.pos
	for n > 0 {
		// Take as many bits as possible from the current byte.
		off := pos % 8
		take := 8 - off
		if take > n {
			take = n
		}
		b := uint64(br.buf[pos/8]) >> uint(8-off-take)
		v = v<<uint(take) | b&(1<<uint(take)-1)
		pos += take
		n -= take
	}
	return v, nil
}

// ReadFlag reads a single bit and returns true if it is set.
func (br *BitReader) ReadFlag() (bool, error) {
	b, err := br.ReadBits(1)
	return b == 1, err
}

// ReadUe parses a syntax element of ue(v) descriptor, i.e. an unsigned integer
// Exp-Golomb-coded element using method as specified in section 9.1 of ITU-T
// H.264. The number of leading zero bits is capped at 32.
func (br *BitReader) ReadUe() (uint64, error) {
	var nZeros int
	for {
		b, err := br.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if b == 1 || nZeros == maxLeadingZeros {
			break
		}
		nZeros++
	}
	rem, err := br.ReadBits(nZeros)
	if err != nil {
		return 0, err
	}
	return 1<<uint(nZeros) - 1 + rem, nil
}

// ReadSe parses a syntax element with descriptor se(v), i.e. a signed integer
// Exp-Golomb-coded syntax element, using the method described in sections
// 9.1 and 9.1.1 of ITU-T H.264. Odd code numbers map to positive values and
// even code numbers to negative values.
func (br *BitReader) ReadSe() (int64, error) {
	codeNum, err := br.ReadUe()
	if err != nil {
		return 0, errors.Wrap(err, "error reading ue(v)")
	}
	if codeNum&1 == 1 {
		return int64((codeNum + 1) / 2), nil
	}
	return -int64(codeNum / 2), nil
}

// SkipBits advances the cursor by n bits.
func (br *BitReader) SkipBits(n int) error {
	if n < 0 {
		return ErrInvalidReadSize
	}
	if n > br.BitsRemaining() {
		return io.ErrUnexpectedEOF
	}
	br.pos += n
	return nil
}

// ByteAlign advances the cursor to the start of the next byte. It does nothing
// if the cursor is already byte aligned.
func (br *BitReader) ByteAlign() {
	br.pos = (br.pos + 7) &^ 7
}

// ByteAligned returns true if the reader position is at the start of a byte,
// and false otherwise.
func (br *BitReader) ByteAligned() bool {
	return br.pos%8 == 0
}

// Off returns the current offset from the starting bit of the current byte.
func (br *BitReader) Off() int {
	return br.pos % 8
}

// Pos returns the cursor position in bits.
func (br *BitReader) Pos() int {
	return br.pos
}

// BitsRemaining returns the number of bits between the cursor and the end of
// the source.
func (br *BitReader) BitsRemaining() int {
	return len(br.buf)*8 - br.pos
}

// BytesRead returns the number of bytes that have been fully or partially
// read by the BitReader.
func (br *BitReader) BytesRead() int {
	return (br.pos + 7) / 8
}

// ReadBytes reads n whole bytes from a byte aligned cursor. If fewer than n
// bytes remain, the remaining bytes are returned with io.ErrUnexpectedEOF.
func (br *BitReader) ReadBytes(n int) ([]byte, error) {
	if !br.ByteAligned() {
		return nil, errors.New("reader is not byte aligned")
	}
	start := br.pos / 8
	end := start + n
	var err error
	if end > len(br.buf) {
		end = len(br.buf)
		err = io.ErrUnexpectedEOF
	}
	br.pos = end * 8
	return br.buf[start:end], err
}
