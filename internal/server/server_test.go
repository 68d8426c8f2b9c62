package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/handler"
	"wedding-planner/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s, err := storage.NewStorage("")
	require.NoError(t, err)
	return NewRouter(RouterConfig{
		Planner:     handler.NewPlanner(s, zerolog.Nop()),
		Log:         zerolog.Nop(),
		CORSOrigins: []string{"http://localhost:5173"},
	})
}

func post(t *testing.T, router http.Handler, procedure, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+procedure, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router http.Handler, procedure, input string) *httptest.ResponseRecorder {
	t.Helper()
	target := "/rpc/" + procedure
	if input != "" {
		target += "?input=" + url.QueryEscape(input)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) APIError {
	t.Helper()
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error
}

const weddingBody = `{"title":"Test","bride_name":"A","groom_name":"B","wedding_date":"2024-06-15","venue":null,"description":null,"total_budget":25000}`

func TestCreateWedding_Scenario(t *testing.T) {
	router := newTestRouter(t)

	w := post(t, router, "createWedding", weddingBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, float64(25000), got["total_budget"])
	assert.Nil(t, got["venue"])
	assert.Contains(t, got, "venue")
	assert.Equal(t, "2024-06-15T00:00:00Z", got["wedding_date"])
}

func TestBudgetFlow(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, post(t, router, "createWedding", weddingBody).Code)

	w := post(t, router, "createBudgetItem", `{"wedding_id":1,"category":"Venue","item_name":"Hall","estimated_cost":5000,"actual_cost":null,"paid":false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = post(t, router, "updateBudgetItem", `{"id":1,"actual_cost":4800,"paid":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(t, router, "getWeddingBudget", `{"wedding_id":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[{
		"id": 1, "wedding_id": 1, "category": "Venue", "item_name": "Hall",
		"estimated_cost": 5000, "actual_cost": 4800, "paid": true,
		"vendor": null, "notes": null, "created_at": "ignored"
	}]`, replaceCreatedAt(t, w.Body.Bytes()))
}

// replaceCreatedAt masks the server-assigned timestamps so bodies can be
// compared literally.
func replaceCreatedAt(t *testing.T, body []byte) string {
	t.Helper()
	var items []map[string]any
	require.NoError(t, json.Unmarshal(body, &items))
	for _, item := range items {
		item["created_at"] = "ignored"
	}
	out, err := json.Marshal(items)
	require.NoError(t, err)
	return string(out)
}

func TestGuestFlow(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, post(t, router, "createWedding", weddingBody).Code)

	w := post(t, router, "createGuest", `{"wedding_id":1,"name":"Carol","plus_one":false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var guest map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
	assert.Equal(t, "pending", guest["rsvp_status"])
	assert.Nil(t, guest["gift_value"])

	w = post(t, router, "updateGuestRsvp", `{"id":1,"rsvp_status":"attending","dietary_restrictions":"Vegan"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(t, router, "getWeddingGuests", `{"wedding_id":1,"rsvp_status":"attending"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var guests []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guests))
	require.Len(t, guests, 1)
	assert.Equal(t, "Vegan", guests[0]["dietary_restrictions"])

	w = post(t, router, "getWeddingSummary", `{"wedding_id":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var summary map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, float64(1), summary["guests_attending"])
	assert.Equal(t, float64(1), summary["expected_headcount"])
}

func TestErrors(t *testing.T) {
	router := newTestRouter(t)

	t.Run("validation", func(t *testing.T) {
		w := post(t, router, "createWedding", `{"title":"Test"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, CodeValidation, apiErr.Code)
		assert.Equal(t, "bride_name", apiErr.Field)
	})

	t.Run("wrong type", func(t *testing.T) {
		w := post(t, router, "createWedding", `{"title":"Test","total_budget":"lots"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "total_budget", decodeError(t, w).Field)
	})

	t.Run("missing parent wedding", func(t *testing.T) {
		w := post(t, router, "createTask", `{"wedding_id":7,"title":"Orphan"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, CodeNotFound, apiErr.Code)
		assert.Equal(t, "Wedding not found", apiErr.Message)
	})

	t.Run("update missing id", func(t *testing.T) {
		w := post(t, router, "updateTask", `{"id":12,"completed":true}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task with id 12 not found", decodeError(t, w).Message)
	})

	t.Run("unknown procedure", func(t *testing.T) {
		w := post(t, router, "deleteWedding", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("mutation over GET", func(t *testing.T) {
		w := get(t, router, "createWedding", weddingBody)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, CodeMethod, decodeError(t, w).Code)
	})
}

func TestGetWeddings_EmptyList(t *testing.T) {
	router := newTestRouter(t)
	w := get(t, router, "getWeddings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/healthcheck", "/rpc/healthcheck"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code, target)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "ok", status.Status)
		assert.False(t, status.Timestamp.IsZero())
	}
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "getWeddings", "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/rpc/createWedding", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProcedures(t *testing.T) {
	names := NewRPCHandler(nil).Procedures()
	sort.Strings(names)
	assert.Equal(t, []string{
		"createBudgetItem", "createGuest", "createTask", "createWedding",
		"getWeddingBudget", "getWeddingGuests", "getWeddingSummary", "getWeddingTasks", "getWeddings",
		"healthcheck",
		"updateBudgetItem", "updateGuestGift", "updateGuestRsvp", "updateTask",
	}, names)
}
