package database

import "strconv"

// DerivePublicID maps a storage-native identifier to a small integer using
// the scheme the previous system issued ids with: the last 6 hex characters
// of the native id's string form, parsed base-16, reduced modulo 1,000,000.
//
// The scheme is lossy and collision-prone, so it is never trusted on its
// own. The allocator uses it only as the first-choice candidate when a
// record gets its public id assigned, which keeps ids stable for records
// that already had one issued under the old scheme; on collision (or a zero
// result) allocation falls back to the per-table sequence. The persisted
// public_id column is the source of truth for every lookup.
func DerivePublicID(nativeID string) uint {
	hex := make([]byte, 0, 6)
	for i := len(nativeID) - 1; i >= 0 && len(hex) < 6; i-- {
		c := nativeID[i]
		if isHexDigit(c) {
			hex = append(hex, c)
		}
	}
	if len(hex) == 0 {
		return 0
	}

	// digits were collected back to front
	for i, j := 0, len(hex)-1; i < j; i, j = i+1, j-1 {
		hex[i], hex[j] = hex[j], hex[i]
	}

	v, err := strconv.ParseUint(string(hex), 16, 64)
	if err != nil {
		return 0
	}
	return uint(v % 1_000_000)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
