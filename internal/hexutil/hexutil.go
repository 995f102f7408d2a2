// Package hexutil parses and formats the spaced hex dumps used in fixtures and by berdump.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Parse decodes a hex string, ignoring spaces, tabs and line breaks.
// An optional "0x" prefix on the whole string is accepted.
func Parse(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", "\n", "", "\r", "", "\t", "").Replace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return data, nil
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(s string) []byte {
	data, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return data
}

// Format renders data as lowercase hex bytes separated by spaces: "30 80 00 00".
func Format(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(data) * 3)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString([]byte{b}))
	}
	return sb.String()
}
