package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/requestid"
)

func serve(t *testing.T, incoming string) (ctxID string, headerID string) {
	t.Helper()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestid.FromContext(r.Context())
		require.True(t, ok)
		ctxID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware_Generates(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serve(t, "")
	assert.Equal(t, ctxID, headerID)

	parsed, err := uuid.Parse(headerID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestMiddleware_ReusesValidID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"abc123", "test-request-id", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"} {
		ctxID, headerID := serve(t, id)
		assert.Equal(t, id, ctxID)
		assert.Equal(t, id, headerID)
	}
}

func TestMiddleware_ReplacesInvalidID(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"test@request#id",
		"test request id",
		"test/request/id",
		"<script>alert(1)</script>",
		strings.Repeat("a", 129),
	}
	for _, id := range invalid {
		ctxID, headerID := serve(t, id)
		assert.NotEqual(t, id, ctxID)
		assert.Equal(t, ctxID, headerID)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()
	assert.False(t, requestid.Valid(""))
	assert.True(t, requestid.Valid(strings.Repeat("a", 128)))
	assert.False(t, requestid.Valid(strings.Repeat("a", 129)))
}

func TestContextAndExtractor(t *testing.T) {
	t.Parallel()

	_, ok := requestid.FromContext(context.Background())
	assert.False(t, ok)

	extract := requestid.LoggerExtractor()
	_, ok = extract(context.Background())
	assert.False(t, ok)

	ctx := requestid.WithContext(context.Background(), "req-1")
	id, ok := requestid.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", id)

	attr, ok := extract(ctx)
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())
}
