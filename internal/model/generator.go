package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response, including the
// strength estimate of the produced password.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
}

// StrengthRequest asks for a strength estimate of a caller-supplied password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse reports the entropy estimate for a password.
type StrengthResponse struct {
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
}
