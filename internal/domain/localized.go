package domain

// LocalizedText holds the same text in the three supported languages.
// Slots are nullable independently of each other; a missing translation
// is nil, not an empty string.
type LocalizedText struct {
	ID  string  `json:"id" db:"id"`
	En  *string `json:"en" db:"en"`
	Ar  *string `json:"ar" db:"ar"`
	Ckb *string `json:"ckb" db:"ckb"`
}
