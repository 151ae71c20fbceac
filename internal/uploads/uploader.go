// Package uploads talks to the image hosting gateway. The gateway accepts a
// binary file and returns a durable HTTPS URL; no retry or backoff logic is
// owned by this service.
package uploads

import "context"

// File is an image selected for upload, held in memory until submit.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader sends a file to the configured image host and returns its durable
// URL. A failed upload aborts the submit that requested it; no record is
// written.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}
