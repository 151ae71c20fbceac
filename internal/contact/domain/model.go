package domain

import (
	"errors"
	"time"
)

var ErrSubmissionNotFound = errors.New("contact submission not found")

// StatusNew marks a submission nobody has looked at yet.
const StatusNew = "new"

// Submission is a contact-form message persisted before the visitor is
// handed off to the messaging deep link.
type Submission struct {
	ID        string    `firestore:"-"         json:"id"`
	Name      string    `firestore:"name"      json:"name"`
	Email     string    `firestore:"email"     json:"email"`
	Message   string    `firestore:"message"   json:"message"`
	Status    string    `firestore:"status"    json:"status"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}
