package domain

import (
	"strings"
	"time"
)

// Project is a single portfolio project as stored in the catalog collection.
// ID is assigned by the store on creation and never reused. CreatedAt is
// server-assigned, immutable, and the sole sort key (descending) for display.
type Project struct {
	ID          string    `firestore:"-"           json:"id"`
	Title       string    `firestore:"title"       json:"title"`
	Description string    `firestore:"description" json:"description"`
	ImageURL    string    `firestore:"imageUrl"    json:"imageUrl"`
	Tags        []string  `firestore:"tags"        json:"tags"`
	GithubURL   string    `firestore:"githubUrl"   json:"githubUrl,omitempty"`
	LiveURL     string    `firestore:"liveUrl"     json:"liveUrl,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"   json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"   json:"updatedAt,omitempty"`
}

// ProjectFields is the writable portion of a project record. ID and CreatedAt
// are owned by the store and never appear here.
type ProjectFields struct {
	Title       string
	Description string
	ImageURL    string
	Tags        []string
	GithubURL   string
	LiveURL     string
}

// Snapshot is a complete, ordered restatement of the catalog delivered to a
// subscriber. Every snapshot is a total replacement, never a diff.
type Snapshot []Project

// ParseTags splits a comma-separated tag string into an ordered slice,
// trimming whitespace and dropping empty tokens. Duplicates are kept:
// "React, , Node.js ,React" yields ["React", "Node.js", "React"].
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// JoinTags denormalizes a tag slice back into the comma-separated form the
// edit form works with.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
