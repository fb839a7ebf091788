package repository

import (
	"context"

	"portafolio/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	List(ctx context.Context) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// Subscribe streams the full message list, newest first, on every
	// change to the collection until ctx is cancelled.
	Subscribe(ctx context.Context) (<-chan []*entity.Message, error)
}
