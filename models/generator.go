package models

// PasswordOptions selects the length and character classes of a generated
// password.
type PasswordOptions struct {
	Length         int  `json:"length"`
	Uppercase      bool `json:"uppercase"`
	Lowercase      bool `json:"lowercase"`
	Digits         bool `json:"digits"`
	Symbols        bool `json:"symbols"`
	ExcludeSimilar bool `json:"excludeSimilar"`
}

// GeneratedPassword is a freshly generated password with its strength score
// in the range 0..5.
type GeneratedPassword struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
	Label    string `json:"label"`
}
