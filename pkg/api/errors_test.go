package api

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAPIError_ErrorString(t *testing.T) {
	err := NewInvalidRequestError("title", "title is required")
	got := err.Error()
	if !strings.Contains(got, "invalid_request") || !strings.Contains(got, "title") {
		t.Errorf("Error() = %q, want type and param included", got)
	}

	noParam := NewServerError("boom")
	if strings.Contains(noParam.Error(), "param") {
		t.Errorf("Error() = %q, want no param suffix", noParam.Error())
	}
}

func TestUnauthenticatedError_OpaqueMessage(t *testing.T) {
	// The same message must be produced regardless of which credential part
	// was wrong, so the constructor takes no arguments at all.
	a := NewUnauthenticatedError()
	b := NewUnauthenticatedError()
	if a.Message != b.Message {
		t.Errorf("messages differ: %q vs %q", a.Message, b.Message)
	}
	if strings.Contains(strings.ToLower(a.Message), "username not found") {
		t.Errorf("message %q leaks account existence", a.Message)
	}
}

func TestErrorResponse_JSONShape(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Error: NewForbiddenError()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["error"]["type"] != "forbidden" {
		t.Errorf("error.type = %v, want forbidden", decoded["error"]["type"])
	}
}
