package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *storage.Memory) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := storage.NewMemory()
	return New(server.URL, "/api/v1", 5*time.Second, creds), creds
}

func TestBearerTokenInjected(t *testing.T) {
	var gotAuth string
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	creds.Set(storage.KeyAccessToken, "abc123")

	if err := client.Get(context.Background(), "/customer/me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})

	if err := client.Get(context.Background(), "/dishes", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotID == "" {
		t.Fatal("expected X-Request-ID to be set")
	}
}

func TestUnauthorizedClearsExpiredToken(t *testing.T) {
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token has expired"}`))
	})

	creds.Set(storage.KeyAccessToken, "stale")
	creds.Set(storage.KeyUserData, `{"id":1}`)
	creds.Set(storage.KeyGuestToken, "guest")
	creds.Set(storage.KeyTableToken, "table")

	err := client.Get(context.Background(), "/customer/me", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}

	if _, err := creds.Get(storage.KeyAccessToken); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected access token cleared")
	}
	if _, err := creds.Get(storage.KeyUserData); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected user data cleared")
	}

	// Guest and table tokens are outside the invalidation path.
	if _, err := creds.Get(storage.KeyGuestToken); err != nil {
		t.Fatal("guest token must survive")
	}
	if _, err := creds.Get(storage.KeyTableToken); err != nil {
		t.Fatal("table token must survive")
	}
}

// A 401 whose message does not match the clear-token patterns must leave the
// session alone. "Invalid customer token" capitalises Invalid, so neither the
// lowercase "invalid"+"token" rule nor any other rule fires.
func TestUnauthorizedBusinessErrorKeepsSession(t *testing.T) {
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid customer token"}`))
	})

	creds.Set(storage.KeyAccessToken, "valid-token")
	creds.Set(storage.KeyUserData, `{"id":1}`)

	err := client.Get(context.Background(), "/membership/my-tier", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}

	if _, err := creds.Get(storage.KeyAccessToken); err != nil {
		t.Fatal("access token must not be cleared for business 401s")
	}
	if _, err := creds.Get(storage.KeyUserData); err != nil {
		t.Fatal("user data must not be cleared for business 401s")
	}
}

func TestUnauthorizedWithoutTokenKeepsStorage(t *testing.T) {
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token has expired"}`))
	})

	creds.Set(storage.KeyUserData, `{"id":1}`)

	client.Get(context.Background(), "/customer/me", nil)

	if _, err := creds.Get(storage.KeyUserData); err != nil {
		t.Fatal("nothing may be cleared when no token was sent")
	}
}

func TestUnauthorizedClearPatterns(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		shouldClear bool
	}{
		{name: "expired", message: "Token has expired", shouldClear: true},
		{name: "invalidToken", message: "invalid token signature", shouldClear: true},
		{name: "unauthorized", message: "Unauthorized", shouldClear: true},
		{name: "exactInvalidToken", message: "Invalid token", shouldClear: true},
		{name: "customerToken", message: "Invalid customer token", shouldClear: false},
		{name: "wrongTenant", message: "Reservation belongs to another restaurant", shouldClear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"` + tt.message + `"}`))
			})

			creds.Set(storage.KeyAccessToken, "tok")
			client.Get(context.Background(), "/customer/me", nil)

			_, err := creds.Get(storage.KeyAccessToken)
			cleared := errors.Is(err, storage.ErrNotFound)
			if cleared != tt.shouldClear {
				t.Fatalf("message %q: cleared=%v, want %v", tt.message, cleared, tt.shouldClear)
			}
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	creds := storage.NewMemory()
	client := New("http://127.0.0.1:1", "/api/v1", 500*time.Millisecond, creds)

	err := client.Get(context.Background(), "/dishes", nil)
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}

	msg := ErrorMessage(err)
	if msg == "" || msg == err.Error() {
		t.Fatalf("expected a friendly connectivity message, got %q", msg)
	}
}

func TestDecodeDataEnvelope(t *testing.T) {
	type dish struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "wrapped", body: `{"data":{"id":7,"name":"Phở bò"},"message":"ok"}`},
		{name: "bare", body: `{"id":7,"name":"Phở bò"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out dish
			if err := DecodeData([]byte(tt.body), &out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.ID != 7 || out.Name != "Phở bò" {
				t.Fatalf("decoded %+v", out)
			}
		})
	}
}

func TestErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message", body: `{"message":"Sai mật khẩu","error":"x"}`, want: "Sai mật khẩu"},
		{name: "error", body: `{"error":"bad credentials"}`, want: "bad credentials"},
		{name: "msg", body: `{"msg":"nope"}`, want: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			})

			err := client.Post(context.Background(), "/customer/login", map[string]string{}, nil)
			if got := ErrorMessage(err); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
