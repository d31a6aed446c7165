package dto

// SignUpRequest is the body of POST /sign-up. Phone fields are pointers so
// the validation pass can tell an absent field from a zero value; a nil
// element in Phones is itself a validation failure.
type SignUpRequest struct {
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Phones   []*PhoneInput `json:"phones"`
}

type PhoneInput struct {
	Number      *int64  `json:"number"`
	CityCode    *int    `json:"cityCode"`
	CountryCode *string `json:"countryCode"`
}

type SignUpResponse struct {
	ID        string `json:"id"`
	Created   string `json:"created"`
	LastLogin string `json:"lastLogin"`
	Token     string `json:"token"`
	IsActive  bool   `json:"isActive"`
}
