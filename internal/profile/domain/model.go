package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// Profile is the single site-owner document backing the hero/about sections.
// UpdatedAt is kept as an RFC3339 string, assigned on save.
type Profile struct {
	Name         string   `firestore:"name"         json:"name"`
	ProfileImage string   `firestore:"profileImage" json:"profileImage"`
	Bio          string   `firestore:"bio"          json:"bio"`
	Skills       []string `firestore:"skills"       json:"skills"`
	UpdatedAt    string   `firestore:"updatedAt"    json:"updatedAt,omitempty"`
}
