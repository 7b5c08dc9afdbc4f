package messaging

import (
	"encoding/base64"
	"strconv"

	"impulsa/backend/internal/common"
)

// Channel cursors are opaque to callers: base64 over the last-seen sequence.

func encodeCursor(seq uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(seq), 10)))
}

func decodeCursor(cursor string) (uint, error) {
	if cursor == "" {
		return 0, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, common.ErrInvalidCursor
	}
	seq, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, common.ErrInvalidCursor
	}
	return uint(seq), nil
}
