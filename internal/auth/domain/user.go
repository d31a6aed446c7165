package domain

import "time"

// User is the persisted identity record. PasswordHash holds the bcrypt
// digest; the plaintext password never survives past sign-up.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	LastLogin    time.Time
	IsActive     bool
	Phones       []Phone
}

// Phone is a contact record owned by exactly one User. The tuple
// (Number, CityCode, CountryCode) is unique across all phones.
type Phone struct {
	ID          string
	UserID      string
	Number      int64
	CityCode    int
	CountryCode string
}
