package ber

import "golang.org/x/exp/constraints"

// maxGroups bounds both the extended tag number (7-bit groups)
// and the long-form length (8-bit bytes).
const maxGroups = 8

// groupsNeeded returns how many bits-wide groups are needed to hold v, at least one.
func groupsNeeded[T constraints.Unsigned](v T, bits int) int {
	n := 1
	for v >>= bits; v != 0; v >>= bits {
		n++
	}
	return n
}
