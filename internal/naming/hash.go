package naming

import (
	"crypto/md5"
	"encoding/hex"
)

// hashLen is the number of hex characters kept from the digest.
const hashLen = 6

// ShortHash returns a fixed-length lowercase hex fingerprint of s: the first
// 6 hex characters of the MD5 digest of its UTF-8 bytes. It is a pure
// disambiguation aid, not a security function; true collisions are handled
// by the [Resolver].
func ShortHash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:hashLen]
}
