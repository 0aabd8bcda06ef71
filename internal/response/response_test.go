package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(ContextKeyRequestID, "req-123")

	Success(c, http.StatusOK, gin.H{"value": 1})

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if body.Error != nil {
		t.Errorf("error = %+v, want nil", body.Error)
	}
	if body.Metadata.RequestID != "req-123" {
		t.Errorf("request_id = %q, want req-123", body.Metadata.RequestID)
	}
	if body.Metadata.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

func TestFailEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, http.StatusForbidden, ErrRoleNotAllowed)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if body.Error == nil || body.Error.Code != ErrRoleNotAllowed {
		t.Fatalf("error = %+v, want code %s", body.Error, ErrRoleNotAllowed)
	}
	if body.Error.Message != GetMessage(ErrRoleNotAllowed) {
		t.Errorf("message = %q, want default for code", body.Error.Message)
	}
	// Metadata falls back to a generated request ID when the middleware
	// did not run.
	if body.Metadata.RequestID == "" {
		t.Error("request_id missing")
	}
}

func TestGetMessageUnknownCode(t *testing.T) {
	if msg := GetMessage(ErrCode("NO_SUCH_CODE")); msg == "" {
		t.Error("unknown code should still produce a message")
	}
}
