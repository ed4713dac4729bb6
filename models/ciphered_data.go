package models

// CipheredText is the self-describing at-rest form of one encrypted vault
// field. Its structure is opaque to the storage layer.
type CipheredText string

// CipheredVaultFields holds the five encrypted fields of a vault item.
// Every field is always present; absent optional values are the encryption
// of the empty string.
type CipheredVaultFields struct {
	Title    CipheredText
	Username CipheredText
	Password CipheredText
	URL      CipheredText
	Notes    CipheredText
}
