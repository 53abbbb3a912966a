package registry

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint derives a content reference from raw asset content: the hex
// sha3-512 digest behind an "01" version prefix.
func Fingerprint(content []byte) string {
	digest := sha3.Sum512(content)
	return "01" + hex.EncodeToString(digest[:])
}
