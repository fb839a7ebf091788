package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portafolio/internal/domain/repository"
	"portafolio/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

// cartDocument holds the raw serialized snapshot, mirroring how the
// browser would keep the cart as one local-storage blob.
type cartDocument struct {
	Items     string    `firestore:"items"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func (r *firestoreCartRepository) Load(ctx context.Context, sessionID string) ([]byte, error) {
	doc, err := r.client.Collection("carts").Doc(sessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Internal("Failed to load cart", err)
	}

	var cart cartDocument
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}

	return []byte(cart.Items), nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, sessionID string, snapshot []byte) error {
	_, err := r.client.Collection("carts").Doc(sessionID).Set(ctx, cartDocument{
		Items:     string(snapshot),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.Collection("carts").Doc(sessionID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart", err)
	}

	return nil
}
