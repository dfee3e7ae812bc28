package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

const (
	bcryptRounds = 12
)

func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptRounds)
	return string(h), err
}

func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func CreateMAC(secret, token, salt string) string {
	tokenBytes, _ := hex.DecodeString(token)
	saltBytes, _ := hex.DecodeString(salt)
	key := make([]byte, 0, (len(token)+len(salt))/2)
	key = append(key, tokenBytes...)
	key = append(key, saltBytes...)
	h := hmac.New(sha256.New, key)
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}

func VerifyMac(mac1, secret, token, salt string) bool {
	mac2 := misc.DecodeHex(CreateMAC(secret, token, salt))
	return hmac.Equal(misc.DecodeHex(mac1), mac2)
}
