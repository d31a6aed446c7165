package dto

// LoginResponse is the body of a successful GET /login. Password is always
// the empty string; the hash never leaves the service.
type LoginResponse struct {
	ID        string        `json:"id"`
	Created   string        `json:"created"`
	LastLogin string        `json:"lastLogin"`
	Token     string        `json:"token"`
	IsActive  bool          `json:"isActive"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Password  string        `json:"password"`
	Phones    []PhoneOutput `json:"phones"`
}

type PhoneOutput struct {
	Number      int64  `json:"number"`
	CityCode    int    `json:"citycode"`
	CountryCode string `json:"countrycode"`
}
