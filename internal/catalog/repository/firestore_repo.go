package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kineticfolio/portfolio-backend/internal/catalog/domain"
)

const projectsCollection = "projects"

// FirestoreProjectRepository is the production ProjectStore backed by a
// Firestore collection.
type FirestoreProjectRepository struct {
	client *firestore.Client
}

// NewFirestoreProjectRepository creates a new Firestore-backed project store.
func NewFirestoreProjectRepository(client *firestore.Client) *FirestoreProjectRepository {
	return &FirestoreProjectRepository{client: client}
}

func (r *FirestoreProjectRepository) col() *firestore.CollectionRef {
	return r.client.Collection(projectsCollection)
}

func (r *FirestoreProjectRepository) query() firestore.Query {
	return r.col().OrderBy("createdAt", firestore.Desc)
}

// Create inserts a new project document. createdAt is set by the server.
func (r *FirestoreProjectRepository) Create(ctx context.Context, fields domain.ProjectFields) (string, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"title":       fields.Title,
		"description": fields.Description,
		"imageUrl":    fields.ImageURL,
		"tags":        fields.Tags,
		"githubUrl":   fields.GithubURL,
		"liveUrl":     fields.LiveURL,
		"createdAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return ref.ID, nil
}

// Update replaces all writable fields. updatedAt is set by the server;
// createdAt is left untouched.
func (r *FirestoreProjectRepository) Update(ctx context.Context, id string, fields domain.ProjectFields) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: fields.Title},
		{Path: "description", Value: fields.Description},
		{Path: "imageUrl", Value: fields.ImageURL},
		{Path: "tags", Value: fields.Tags},
		{Path: "githubUrl", Value: fields.GithubURL},
		{Path: "liveUrl", Value: fields.LiveURL},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("update project %s: %w", id, err)
	}
	return nil
}

// Delete removes a project document.
func (r *FirestoreProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

// List returns the catalog ordered by createdAt descending.
func (r *FirestoreProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	docs := r.query().Documents(ctx)
	defer docs.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		p, err := decodeProject(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Watch opens a Firestore snapshot listener on the ordered query. Each
// delivered snapshot is a full restatement of the collection. The listener
// stops on ctx cancellation or after the first error.
func (r *FirestoreProjectRepository) Watch(ctx context.Context) (<-chan domain.Snapshot, <-chan error) {
	snapshots := make(chan domain.Snapshot, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(snapshots)
		defer close(errs)

		it := r.query().Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					return
				}
				errs <- fmt.Errorf("watch projects: %w", err)
				return
			}

			list := make(domain.Snapshot, 0, 16)
			docs := snap.Documents
			for {
				doc, err := docs.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					errs <- fmt.Errorf("watch projects: read snapshot: %w", err)
					return
				}
				p, err := decodeProject(doc)
				if err != nil {
					// A single malformed document should not kill the
					// subscription for everyone else.
					log.Printf("[warn] skipping malformed project doc %s: %v", doc.Ref.ID, err)
					continue
				}
				list = append(list, p)
			}

			select {
			case snapshots <- list:
			case <-ctx.Done():
				return
			}
		}
	}()

	return snapshots, errs
}

func decodeProject(doc *firestore.DocumentSnapshot) (domain.Project, error) {
	var p domain.Project
	if err := doc.DataTo(&p); err != nil {
		return domain.Project{}, fmt.Errorf("decode project %s: %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return p, nil
}
