package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword turns a plaintext password into a salted bcrypt hash. This is
// the only transformation applied before a credential is persisted; the
// plaintext never reaches the store.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
