/*
DESCRIPTION
  helpers.go provides general helper utilities.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

import "errors"

// BinToSlice is a helper function to convert a string of binary into a
// corresponding byte slice, e.g. "0100 0001 1000 1100" => {0x41,0x8c}.
// Spaces in the string are ignored. A final partial byte is padded with
// zero bits.
func BinToSlice(s string) ([]byte, error) {
	var (
		a     byte = 0x80
		cur   byte
		bytes []byte
		n     int
	)

	for _, c := range s {
		switch c {
		case ' ':
			continue
		case '1':
			cur |= a
		case '0':
		default:
			return nil, errors.New("invalid binary string")
		}
		n++

		a >>= 1
		if a == 0 {
			bytes = append(bytes, cur)
			cur = 0
			a = 0x80
		}
	}
	if n%8 != 0 {
		bytes = append(bytes, cur)
	}
	return bytes, nil
}
