package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNoPendingDelete = errors.New("no delete confirmation pending for this project")
)

// ValidationError reports the first required field that is missing. It is
// detected before any network call; a failed validation issues zero store or
// upload requests.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UploadError wraps an image upload failure. The submit that triggered the
// upload is aborted whole; no record is created or modified.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// StoreWriteError wraps a create/update/delete failure that happened after
// validation (and upload, if any) succeeded. The caller's state is retained
// so the operation can be retried without re-entering data.
type StoreWriteError struct {
	Op  string
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// SubscriptionError reports a live query that failed to establish or was
// interrupted. It is surfaced once per occurrence; no automatic retry is
// performed.
type SubscriptionError struct {
	Err error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("catalog subscription failed: %v", e.Err)
}

func (e *SubscriptionError) Unwrap() error { return e.Err }
