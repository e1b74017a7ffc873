/*
DESCRIPTION
  fieldreader.go provides a field reader with a sticky error for parsing
  sequences of syntax elements.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

// FieldReader provides methods for reading bool and int fields from a
// BitReader with a sticky error that may be checked after a series of
// parsing read calls. Once a read fails, all following reads return zero
// values without touching the underlying reader.
type FieldReader struct {
	e  error
	br *BitReader
}

// NewFieldReader returns a new FieldReader.
func NewFieldReader(br *BitReader) *FieldReader {
	return &FieldReader{br: br}
}

// ReadBits returns the value of the next n bits. If we have an error
// already, we do not continue with the read.
func (r *FieldReader) ReadBits(n int) uint64 {
	if r.e != nil {
		return 0
	}
	var b uint64
	b, r.e = r.br.ReadBits(n)
	return b
}

// ReadFlag reads a u(1) syntax element as a bool.
func (r *FieldReader) ReadFlag() bool {
	return r.ReadBits(1) == 1
}

// ReadUe parses a syntax element of ue(v) descriptor. The read does not happen
// if the FieldReader has a non-nil error.
func (r *FieldReader) ReadUe() uint64 {
	if r.e != nil {
		return 0
	}
	var i uint64
	i, r.e = r.br.ReadUe()
	return i
}

// ReadSe parses a syntax element with descriptor se(v). The read does not
// happen if the FieldReader has a non-nil error.
func (r *FieldReader) ReadSe() int64 {
	if r.e != nil {
		return 0
	}
	var i int64
	i, r.e = r.br.ReadSe()
	return i
}

// ByteAlign aligns the underlying reader to the next byte boundary.
func (r *FieldReader) ByteAlign() {
	if r.e != nil {
		return
	}
	r.br.ByteAlign()
}

// BitReader returns the underlying BitReader.
func (r *FieldReader) BitReader() *BitReader {
	return r.br
}

// Err returns the FieldReader's error e.
func (r *FieldReader) Err() error {
	return r.e
}
