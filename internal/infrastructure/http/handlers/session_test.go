package handlers

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/application/session"
	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/infrastructure/persistence/localstore"
)

// memoryKV is an in-memory outbound.KeyValueStore.
type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func sessionRouter(sess *session.Service) chi.Router {
	store := localstore.New(newMemoryKV(), zap.NewNop())
	h := NewSessionHandlers(sess, store, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/session/view", h.GetView)
	r.Put("/session/view", h.SetView)
	r.Get("/session/outcome", h.Outcome)
	r.Delete("/session/outcome", h.ClearOutcome)
	r.Get("/session/preferences", h.GetPreferences)
	r.Put("/session/preferences", h.PutPreferences)
	return r
}

func TestViewRoundTrip(t *testing.T) {
	router := sessionRouter(newTestSession())

	rec := doJSON(t, router, http.MethodGet, "/session/view", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view viewResponse
	dataAs(t, decodeResponse(t, rec), &view)
	assert.Equal(t, "generator", view.View)

	rec = doJSON(t, router, http.MethodPut, "/session/view", setViewRequest{View: "saved"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/session/view", nil)
	dataAs(t, decodeResponse(t, rec), &view)
	assert.Equal(t, "saved", view.View)
}

func TestSetViewRejectsUnknownName(t *testing.T) {
	router := sessionRouter(newTestSession())

	rec := doJSON(t, router, http.MethodPut, "/session/view", setViewRequest{View: "dashboard"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOutcomeLifecycle(t *testing.T) {
	sess := newTestSession()
	router := sessionRouter(sess)

	sess.SetGenerateError("The elves are having trouble in the kitchen. Please try again!")

	rec := doJSON(t, router, http.MethodGet, "/session/outcome", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var outcome outcomeResponse
	dataAs(t, decodeResponse(t, rec), &outcome)
	assert.Equal(t, "The elves are having trouble in the kitchen. Please try again!", outcome.Error)

	rec = doJSON(t, router, http.MethodDelete, "/session/outcome", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/session/outcome", nil)
	outcome = outcomeResponse{}
	dataAs(t, decodeResponse(t, rec), &outcome)
	assert.Empty(t, outcome.Error)
}

func TestPreferencesDefaultWhenUnset(t *testing.T) {
	router := sessionRouter(newTestSession())

	rec := doJSON(t, router, http.MethodGet, "/session/preferences", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var prefs recipe.MixPreferences
	dataAs(t, decodeResponse(t, rec), &prefs)
	assert.Equal(t, recipe.DefaultPreferences(), prefs)
}

func TestPreferencesRoundTrip(t *testing.T) {
	router := sessionRouter(newTestSession())

	submitted := recipe.MixPreferences{
		Vibe:            recipe.VibeSweet,
		BaseIngredients: []string{"Corn Chex"},
		SpiceLevel:      3,
		ChristmasSpirit: true,
	}
	rec := doJSON(t, router, http.MethodPut, "/session/preferences", submitted)
	require.Equal(t, http.StatusOK, rec.Code)

	var echoed recipe.MixPreferences
	dataAs(t, decodeResponse(t, rec), &echoed)
	assert.Equal(t, recipe.VibeSweet, echoed.Vibe)
	// Normalization fills in absent slice fields.
	assert.NotNil(t, echoed.MixIns)
	assert.NotNil(t, echoed.Dietary)

	rec = doJSON(t, router, http.MethodGet, "/session/preferences", nil)
	var loaded recipe.MixPreferences
	dataAs(t, decodeResponse(t, rec), &loaded)
	assert.Equal(t, []string{"Corn Chex"}, loaded.BaseIngredients)
	assert.Equal(t, 3, loaded.SpiceLevel)
}
