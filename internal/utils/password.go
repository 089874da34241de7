package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an administrator password with bcrypt at the given
// cost.  A cost outside bcrypt's supported range (a mistyped BCRYPT_COST)
// falls back to the library default rather than failing the admin bootstrap
// at startup.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// Only the login handler calls this; staff registration involves no
// password at all.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
