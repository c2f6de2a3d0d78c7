package security

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes : bcrypt учитывает не больше 72 байт пароля
const MaxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var dummyHash = sync.OnceValue(func() string {
	hash, _ := HashPassword("dummy-password-for-timing")
	return hash
})

// CheckDummyPassword : тратит столько же времени, сколько CheckPassword, для несуществующих пользователей
func CheckDummyPassword(password string) {
	_ = CheckPassword(password, dummyHash())
}
