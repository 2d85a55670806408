package models

import "golang.org/x/crypto/bcrypt"

// AdminAccount is the single administrator record. It is seeded once at
// first run and never mutated by the application.
type AdminAccount struct {
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	Name     string `bson:"name" json:"name"`
}

func (a *AdminAccount) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *AdminAccount) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}
