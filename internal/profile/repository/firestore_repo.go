package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kineticfolio/portfolio-backend/internal/profile/domain"
)

const (
	profileCollection = "profile"
	profileDocID      = "main"
)

// FirestoreProfileRepository stores the profile in the fixed profile/main
// document.
type FirestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) *FirestoreProfileRepository {
	return &FirestoreProfileRepository{client: client}
}

func (r *FirestoreProfileRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(profileCollection).Doc(profileDocID)
}

func (r *FirestoreProfileRepository) Get(ctx context.Context) (domain.Profile, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (r *FirestoreProfileRepository) Set(ctx context.Context, p domain.Profile) error {
	if _, err := r.doc().Set(ctx, p); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}
