package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
	"portafolio/pkg/errors"
	"portafolio/pkg/logger"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		doc := r.client.Collection("messages").NewDoc()
		message.ID = doc.ID
	}
	if message.Date.IsZero() {
		message.Date = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) List(ctx context.Context) ([]*entity.Message, error) {
	iter := r.client.Collection("messages").OrderBy("date", firestore.Desc).Documents(ctx)
	return collectMessages(iter)
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("messages").Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to mark message as read", err)
	}

	return nil
}

func (r *firestoreMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("messages").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete message", err)
	}

	return nil
}

// Subscribe listens on the messages collection and pushes the full
// ordered list on every change. The channel closes when ctx ends.
func (r *firestoreMessageRepository) Subscribe(ctx context.Context) (<-chan []*entity.Message, error) {
	snapshots := r.client.Collection("messages").OrderBy("date", firestore.Desc).Snapshots(ctx)
	updates := make(chan []*entity.Message)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Message subscription ended: %v", err)
				}
				return
			}

			messages, err := collectMessages(snap.Documents)
			if err != nil {
				logger.Error("Failed to read message snapshot: %v", err)
				continue
			}

			select {
			case updates <- messages:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func collectMessages(iter *firestore.DocumentIterator) ([]*entity.Message, error) {
	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
