package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/usecase"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/client"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRouter arma el router completo de sales contra un backend falso.
func setupRouter(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *store.DraftStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	t.Setenv("BACKEND_BASE_URL", srv.URL)

	c := client.NewSalesClient()
	drafts := store.NewDraftStore()

	ctrl := NewSaleController(
		usecase.NewListSalesUseCase(c),
		usecase.NewCreateDraftUseCase(drafts),
		usecase.NewUpdateDraftUseCase(drafts),
		usecase.NewAddDraftItemUseCase(drafts, c),
		usecase.NewRemoveDraftItemUseCase(drafts),
		usecase.NewSubmitSaleUseCase(drafts, c, nil, nil),
		usecase.NewCancelDraftUseCase(drafts),
	)

	router := gin.New()
	v1 := router.Group("/api/v1")
	ctrl.RegisterRoutes(v1)
	return router, drafts
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDraft_ReturnsEmptyDraft(t *testing.T) {
	router, _ := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w := doRequest(router, http.MethodPost, "/api/v1/sales/drafts", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["draft_id"])
	assert.Empty(t, body["customer_id"])
	assert.Empty(t, body["items"])
}

func TestUpdateDraft_UnknownDraftIs404(t *testing.T) {
	router, _ := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w := doRequest(router, http.MethodPatch, "/api/v1/sales/drafts/nope", `{"customer_id":"c1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItem_StockRejectionIs400(t *testing.T) {
	router, drafts := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Products" {
			w.Write([]byte(`[{"product_id":"p1","name":"Tenis","stock":2,"sale_price":"10.00"}]`))
		}
	})
	draft := drafts.Create()

	w := doRequest(router, http.MethodPost, "/api/v1/sales/drafts/"+draft.ID+"/items",
		`{"product_id":"p1","quantity":5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "stock")

	// El borrador sigue vacío.
	snap, err := drafts.Snapshot(draft.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestSubmit_ValidationListsAllMissingFields(t *testing.T) {
	router, drafts := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	draft := drafts.Create()

	w := doRequest(router, http.MethodPost, "/api/v1/sales/drafts/"+draft.ID+"/submit", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missing_fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"customer_id", "items", "payment_method_id"}, body.MissingFields)
}

func TestSubmit_BackendFailureIs502WithGenericMessage(t *testing.T) {
	router, drafts := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Products":
			w.Write([]byte(`[{"product_id":"p1","name":"Tenis","stock":5,"sale_price":"10.00"}]`))
		case "/Sales":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("secret internal detail"))
		}
	})
	draft := drafts.Create()

	w := doRequest(router, http.MethodPatch, "/api/v1/sales/drafts/"+draft.ID,
		`{"customer_id":"c1","payment_method_id":"m1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/sales/drafts/"+draft.ID+"/items",
		`{"product_id":"p1","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/sales/drafts/"+draft.ID+"/submit", "")
	require.Equal(t, http.StatusBadGateway, w.Code)

	// El detalle del backend no se filtra al cliente.
	assert.NotContains(t, w.Body.String(), "secret internal detail")
	assert.Contains(t, w.Body.String(), "Error creating sale")

	// El borrador se preserva para reintentar.
	snap, err := drafts.Snapshot(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "c1", snap.CustomerID)
	assert.Len(t, snap.Items, 1)
}

func TestCancelDraft(t *testing.T) {
	router, drafts := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	draft := drafts.Create()

	w := doRequest(router, http.MethodDelete, "/api/v1/sales/drafts/"+draft.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, drafts.Count())
}
