package usecase

import (
	"context"
	"time"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
	}
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

func (uc *MessageUseCase) Submit(ctx context.Context, input ContactInput) (*entity.Message, error) {
	message := &entity.Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Date:    time.Now(),
		Read:    false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *MessageUseCase) List(ctx context.Context) ([]*entity.Message, error) {
	return uc.messageRepo.List(ctx)
}

func (uc *MessageUseCase) Subscribe(ctx context.Context) (<-chan []*entity.Message, error) {
	return uc.messageRepo.Subscribe(ctx)
}

// MarkRead is idempotent: marking an already-read message is a no-op.
func (uc *MessageUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.messageRepo.MarkRead(ctx, id)
}

func (uc *MessageUseCase) Delete(ctx context.Context, id string) error {
	return uc.messageRepo.Delete(ctx, id)
}

func UnreadCount(messages []*entity.Message) int {
	count := 0
	for _, message := range messages {
		if !message.Read {
			count++
		}
	}
	return count
}
