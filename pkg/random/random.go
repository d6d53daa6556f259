package random

import (
	"crypto/rand"
	"math/big"
)

const hashBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// ShortURLHash proposes a candidate hash for a share link's short URL.
// The server only accepts lowercase alphanumerics.
func ShortURLHash(n int) string {
	b := make([]byte, n)
	hashLen := big.NewInt(int64(len(hashBytes)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, hashLen)
		if err != nil {
			panic(err)
		}
		b[i] = hashBytes[idx.Int64()]
	}
	return string(b)
}
