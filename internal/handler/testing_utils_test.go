package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/stackgrid/internal/catalog"
	"github.com/osse101/stackgrid/internal/inventory"
	"github.com/osse101/stackgrid/internal/store"
)

type testEnv struct {
	store  *store.Store
	router chi.Router
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Def{
		{ID: "wood", Name: "Wood", MaxStack: 64, Category: "resource"},
		{ID: "Iron_Helmet", Name: "Iron Helmet", MaxStack: 1, Category: "headgear"},
		{ID: "torch", MaxStack: 8},
	})
	require.NoError(t, err)
	return c
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	items := newTestCatalog(t)
	engine := inventory.NewEngine(items, inventory.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s := store.New(16, time.Hour)

	return &testEnv{store: s, router: newRouterFor(NewHandlers(s, engine, items, 2, 3))}
}

func newRouterFor(h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", h.RegisterRoutes)
	return r
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// create makes an inventory through the API and returns its id
func (e *testEnv) create(t *testing.T, rows, cols int) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/inventories", CreateInventoryRequest{Rows: rows, Cols: cols})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp InventoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func (e *testEnv) get(t *testing.T, id string) InventoryResponse {
	t.Helper()
	w := e.do(t, http.MethodGet, "/api/v1/inventories/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp InventoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
