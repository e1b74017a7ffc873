/*
DESCRIPTION
  hex.go provides formatting of bytes for display.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codecutil

import (
	"encoding/hex"
	"strings"
)

// HexString formats b as space separated lower case hex bytes,
// e.g. {0x00, 0x0a, 0xff} => "00 0a ff".
func HexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	enc := hex.EncodeToString(b)
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i := 0; i < len(enc); i += 2 {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(enc[i : i+2])
	}
	return sb.String()
}
