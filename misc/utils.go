package misc

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"strings"
	"time"
	"unsafe"
)

// TrimEmail normalizes an email (or access code) for use as a lookup key.
func TrimEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func CreateToken(ln int) []byte {
	tok := make([]byte, ln)
	if _, err := rand.Read(tok); err != nil {
		now := time.Now().UnixNano()
		copy(tok, (*(*[8]byte)(unsafe.Pointer(&now)))[:])
	}
	return tok
}

func DecodeHex(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b
}

func DoesIntersect(opts []string, tg []string) bool {
	for _, o := range opts {
		for _, t := range tg {
			if strings.EqualFold(t, o) {
				return true
			}
		}
	}

	return false
}

// Sanitize zeroes NaN and Inf so they never poison a roll-up.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
