package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubValidator struct {
	valid string
}

func (v *stubValidator) Validate(token string) bool { return token == v.valid }

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"bearer abc123", ""},
		{"Basic abc123", ""},
		{"abc123", ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		if got := BearerToken(req); got != tc.want {
			t.Fatalf("header %q: got %q want %q", tc.header, got, tc.want)
		}
	}
}

func TestBearerAuth(t *testing.T) {
	var seenToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenToken = SessionToken(r.Context())
	})
	wrapped := BearerAuth(&stubValidator{valid: "good"})(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp := httptest.NewRecorder()
	wrapped.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d", resp.Code)
	}
	if seenToken != "good" {
		t.Fatalf("token not threaded through context: %q", seenToken)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp = httptest.NewRecorder()
	wrapped.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: expected 401, got %d", resp.Code)
	}
}
