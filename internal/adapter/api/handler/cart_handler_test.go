package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portafolio/internal/adapter/api"
	"portafolio/internal/usecase"
)

type stubCartRepo struct {
	snapshots map[string][]byte
}

func (s *stubCartRepo) Load(_ context.Context, sessionID string) ([]byte, error) {
	return s.snapshots[sessionID], nil
}

func (s *stubCartRepo) Save(_ context.Context, sessionID string, snapshot []byte) error {
	s.snapshots[sessionID] = snapshot
	return nil
}

func (s *stubCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(s.snapshots, sessionID)
	return nil
}

func newCartTestContext(t *testing.T, method, body, session string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, "/v1/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if session != "" {
		req.Header.Set("X-Cart-Session", session)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCartHandler_MissingSessionHeader(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUseCase(&stubCartRepo{snapshots: map[string][]byte{}}))

	c, rec := newCartTestContext(t, http.MethodGet, "", "")
	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_AddAndGet(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUseCase(&stubCartRepo{snapshots: map[string][]byte{}}))

	c, rec := newCartTestContext(t, http.MethodPost, `{"id":"p1","title":"Print","price":12.5}`, "s1")
	require.NoError(t, h.AddItem(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_price":"12.50"`)

	c, rec = newCartTestContext(t, http.MethodGet, "", "s1")
	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":1`)
}
