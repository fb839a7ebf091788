package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portafolio/internal/domain/entity"
)

type mockCartRepo struct {
	snapshots map[string][]byte
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{snapshots: make(map[string][]byte)}
}

func (m *mockCartRepo) Load(_ context.Context, sessionID string) ([]byte, error) {
	return m.snapshots[sessionID], nil
}

func (m *mockCartRepo) Save(_ context.Context, sessionID string, snapshot []byte) error {
	m.snapshots[sessionID] = snapshot
	return nil
}

func (m *mockCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(m.snapshots, sessionID)
	return nil
}

func TestCartUseCase_AddIncrementsQty(t *testing.T) {
	uc := NewCartUseCase(newMockCartRepo())
	product := entity.CartItem{ID: "p1", Title: "Print", Price: 12.5}

	var items []entity.CartItem
	var err error
	for i := 0; i < 4; i++ {
		items, err = uc.Add(context.Background(), "s1", product)
		require.NoError(t, err)
	}

	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Qty)
}

func TestCartUseCase_RemovePreservesOthers(t *testing.T) {
	uc := NewCartUseCase(newMockCartRepo())
	ctx := context.Background()

	for _, p := range []entity.CartItem{
		{ID: "a", Title: "A", Price: 1.25},
		{ID: "b", Title: "B", Price: 2.50},
		{ID: "c", Title: "C", Price: 3.75},
	} {
		_, err := uc.Add(ctx, "s1", p)
		require.NoError(t, err)
	}

	items, err := uc.Remove(ctx, "s1", "b")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, 1.25, items[0].Price)
	assert.Equal(t, "c", items[1].ID)
	assert.Equal(t, 3.75, items[1].Price)
}

func TestCartUseCase_RemoveAbsentIsNoop(t *testing.T) {
	uc := NewCartUseCase(newMockCartRepo())
	ctx := context.Background()

	_, err := uc.Add(ctx, "s1", entity.CartItem{ID: "a", Price: 1})
	require.NoError(t, err)

	items, err := uc.Remove(ctx, "s1", "missing")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartTotals(t *testing.T) {
	items := []entity.CartItem{
		{ID: "a", Price: 9.99, Qty: 2},
		{ID: "b", Price: 0.01, Qty: 3},
	}

	assert.Equal(t, 5, TotalItems(items))
	assert.True(t, TotalPrice(items).Equal(decimal.RequireFromString("20.01")))
}

func TestCartUseCase_ClearEmptiesTotals(t *testing.T) {
	uc := NewCartUseCase(newMockCartRepo())
	ctx := context.Background()

	_, err := uc.Add(ctx, "s1", entity.CartItem{ID: "a", Price: 10})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "s1"))

	items, err := uc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, TotalItems(items))
	assert.True(t, TotalPrice(items).IsZero())
}

func TestCartUseCase_PersistenceRoundTrip(t *testing.T) {
	repo := newMockCartRepo()
	ctx := context.Background()

	first := NewCartUseCase(repo)
	_, err := first.Add(ctx, "s1", entity.CartItem{ID: "a", Title: "A", Price: 4.2, Image: "img"})
	require.NoError(t, err)
	want, err := first.Add(ctx, "s1", entity.CartItem{ID: "b", Title: "B", Price: 1})
	require.NoError(t, err)

	// A fresh manager over the same store simulates a session restart.
	second := NewCartUseCase(repo)
	got, err := second.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCartUseCase_CorruptSnapshotLoadsEmpty(t *testing.T) {
	repo := newMockCartRepo()
	repo.snapshots["s1"] = []byte("{not json")

	uc := NewCartUseCase(repo)
	items, err := uc.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
