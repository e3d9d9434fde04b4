package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/agenda-api/internal/handlers"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewAppointmentHandler(nil, nil, nil, nil, nil, nil)

	r := gin.New()
	r.POST("/appointments", h.Create)
	r.GET("/appointments", h.List)
	r.GET("/appointments/:id", h.Get)
	r.PATCH("/appointments/:id/cancel", h.Cancel)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

// The web client sends the literal "undefined" for unset filters; that must
// resolve to an empty result, not a server error.
func TestListAppointments_UndefinedFilterIsEmptyList(t *testing.T) {
	r := newRouter()

	for _, path := range []string{
		"/appointments?client_id=undefined",
		"/appointments?barber_id=undefined",
		"/appointments?date=undefined",
	} {
		w := do(t, r, http.MethodGet, path, "")

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String(), path)
	}
}

func TestGetAppointment_MalformedIDIsInvalidReference(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodGet, "/appointments/not-a-number", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_reference", errorCode(t, w))
}

func TestCancelAppointment_MalformedIDIsInvalidReference(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodPatch, "/appointments/abc/cancel", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_reference", errorCode(t, w))
}

func TestCreateAppointment_WrongIDTypeIsInvalidReference(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodPost, "/appointments", `{
		"service": "corte",
		"datetime": "2026-09-15 10:00",
		"barber_id": "abc",
		"client_id": 1,
		"shop_id": 1
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_reference", errorCode(t, w))
}

func TestCreateAppointment_MissingFieldsIsValidationError(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodPost, "/appointments", `{"service": "corte"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", errorCode(t, w))
}
