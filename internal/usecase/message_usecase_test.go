package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portafolio/internal/domain/entity"
)

type mockMessageRepo struct {
	messages map[string]*entity.Message
	nextID   int
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{messages: make(map[string]*entity.Message)}
}

func (m *mockMessageRepo) Create(_ context.Context, message *entity.Message) error {
	m.nextID++
	message.ID = string(rune('a' + m.nextID - 1))
	m.messages[message.ID] = message
	return nil
}

func (m *mockMessageRepo) List(_ context.Context) ([]*entity.Message, error) {
	list := make([]*entity.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		list = append(list, msg)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (m *mockMessageRepo) MarkRead(_ context.Context, id string) error {
	if msg, ok := m.messages[id]; ok {
		msg.Read = true
	}
	return nil
}

func (m *mockMessageRepo) Delete(_ context.Context, id string) error {
	delete(m.messages, id)
	return nil
}

func (m *mockMessageRepo) Subscribe(_ context.Context) (<-chan []*entity.Message, error) {
	ch := make(chan []*entity.Message)
	close(ch)
	return ch, nil
}

func TestUnreadCount(t *testing.T) {
	messages := []*entity.Message{
		{ID: "a", Read: false},
		{ID: "b", Read: true},
		{ID: "c", Read: false},
	}

	assert.Equal(t, 2, UnreadCount(messages))

	messages[0].Read = true
	assert.Equal(t, 1, UnreadCount(messages))
}

func TestMessageUseCase_SubmitStampsDefaults(t *testing.T) {
	uc := NewMessageUseCase(newMockMessageRepo())

	message, err := uc.Submit(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hola",
	})
	require.NoError(t, err)

	assert.False(t, message.Read)
	assert.WithinDuration(t, time.Now(), message.Date, time.Second)
}

func TestMessageUseCase_MarkReadIsIdempotent(t *testing.T) {
	repo := newMockMessageRepo()
	uc := NewMessageUseCase(repo)
	ctx := context.Background()

	message, err := uc.Submit(ctx, ContactInput{Name: "A", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, uc.MarkRead(ctx, message.ID))
	require.NoError(t, uc.MarkRead(ctx, message.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, UnreadCount(list))
}

func TestMessageUseCase_Delete(t *testing.T) {
	repo := newMockMessageRepo()
	uc := NewMessageUseCase(repo)
	ctx := context.Background()

	message, err := uc.Submit(ctx, ContactInput{Name: "A", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, message.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
