package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/kineticfolio/portfolio-backend/internal/contact/domain"
)

const submissionsCollection = "contactSubmissions"

// FirestoreSubmissionRepository stores contact submissions in Firestore.
type FirestoreSubmissionRepository struct {
	client *firestore.Client
}

func NewFirestoreSubmissionRepository(client *firestore.Client) *FirestoreSubmissionRepository {
	return &FirestoreSubmissionRepository{client: client}
}

func (r *FirestoreSubmissionRepository) col() *firestore.CollectionRef {
	return r.client.Collection(submissionsCollection)
}

func (r *FirestoreSubmissionRepository) Create(ctx context.Context, name, email, message string) (string, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"name":      name,
		"email":     email,
		"message":   message,
		"status":    domain.StatusNew,
		"timestamp": firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("create contact submission: %w", err)
	}
	return ref.ID, nil
}

func (r *FirestoreSubmissionRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	docs := r.col().Where("timestamp", "<", cutoff).Documents(ctx)
	defer docs.Stop()

	purged := 0
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return purged, fmt.Errorf("purge contact submissions: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return purged, fmt.Errorf("purge contact submission %s: %w", doc.Ref.ID, err)
		}
		purged++
	}
	return purged, nil
}
