package peercrypt

import (
	"encoding/hex"
	"strings"
)

// decodeHex decodes a hex string, tolerating surrounding whitespace and an
// optional 0x prefix in either case. Keys arrive pasted from shells and
// config files, so both forms must import cleanly.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return hex.DecodeString(s)
}
