package auth

import "golang.org/x/crypto/bcrypt"

// Credentials hashes and verifies passwords with bcrypt at a fixed work
// factor. The work factor comes from configuration so tests can run at
// bcrypt.MinCost.
type Credentials struct {
	cost int
}

func NewCredentials(cost int) Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Credentials{cost: cost}
}

func (c Credentials) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A mismatch is
// not an error; bcrypt's comparator handles timing safety.
func (c Credentials) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
