package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSession_AssignsNewID(t *testing.T) {
	var gotID string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetSessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if gotID == "" {
		t.Fatal("Expected a session id in context")
	}

	cookies := rr.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == sessionCookie && c.Value == gotID {
			found = true
		}
	}
	if !found {
		t.Error("Expected session cookie set to the context id")
	}
}

func TestSession_ReusesExistingCookie(t *testing.T) {
	var gotID string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetSessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "existing-session"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if gotID != "existing-session" {
		t.Errorf("Expected existing session reused, got %q", gotID)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("Expected no new cookie for an existing session")
	}
}
