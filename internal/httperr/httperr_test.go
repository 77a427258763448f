package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func respondTo(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, err)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return w.Code, body
}

func TestRespondTypedError(t *testing.T) {
	code, body := respondTo(t, NotFound("No company with code %s could be found.", "acme"))

	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["message"] != "No company with code acme could be found." {
		t.Errorf("message = %q", body["message"])
	}

	errObj := body["error"].(map[string]any)
	if errObj["status"] != float64(http.StatusNotFound) {
		t.Errorf("error.status = %v, want 404", errObj["status"])
	}
	if errObj["message"] != body["message"] {
		t.Errorf("error.message = %q, want %q", errObj["message"], body["message"])
	}
}

func TestRespondUnknownError(t *testing.T) {
	code, body := respondTo(t, errors.New("duplicate key value violates unique constraint"))

	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if body["message"] != "duplicate key value violates unique constraint" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestRespondWrappedTypedError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), BadRequest("invalid invoice ID"))

	code, _ := respondTo(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}
