package core

import (
	"strconv"
	"strings"
)

// KeySeparator joins the file path and the line number in the persisted
// key format: "<absolutePath>::<line>".
const KeySeparator = "::"

// EncodeKey renders a structured key in the persisted wire format. The line
// is always canonical decimal (no sign, no leading zeros).
func EncodeKey(k Key) string {
	return k.Path + KeySeparator + strconv.Itoa(k.Line)
}

// DecodeKey parses a wire key back into its structured form.
//
// The split happens at the last occurrence of the separator: the line number
// is always the final token, so paths that contain "::" themselves still
// decode correctly. The line portion must be a canonical non-negative
// decimal; anything else yields ErrMalformedKey and the entry is treated as
// unmatched by callers rather than as a failure.
func DecodeKey(raw string) (Key, error) {
	idx := strings.LastIndex(raw, KeySeparator)
	if idx < 0 {
		return Key{}, ErrMalformedKey
	}

	path := raw[:idx]
	lineStr := raw[idx+len(KeySeparator):]

	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 0 {
		return Key{}, ErrMalformedKey
	}
	// Reject non-canonical spellings ("07", "+3"): the original integer must
	// be recoverable exactly.
	if strconv.Itoa(line) != lineStr {
		return Key{}, ErrMalformedKey
	}

	return Key{Path: path, Line: line}, nil
}
