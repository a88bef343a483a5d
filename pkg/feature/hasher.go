package feature

import (
	"crypto/md5" //nolint:gosec // distribution hash, not a security boundary
	"encoding/binary"
)

// Bucket maps (flagName, userID) to a stable integer in [0,100).
//
// The flag name is mixed into the digest so that distinct flags bucket the
// same user independently: a user in the low buckets of one experiment is
// not automatically in the low buckets of every other. The digest is a
// pure function of its inputs, so two processes behind a load balancer
// reach the same decision for a user without sharing any state.
func Bucket(flagName, userID string) int {
	sum := md5.Sum([]byte(flagName + ":" + userID))
	return int(binary.BigEndian.Uint32(sum[:4]) % 100)
}
