package qr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/qr/scan", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := api.New(server.URL, "/api/v1", 5*time.Second, storage.NewMemory())
	return NewService(client)
}

func TestScanFlattensResponse(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode scan body: %v", err)
		}
		if body["token"] != "qr-abc" {
			t.Errorf("got token %q, want qr-abc", body["token"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"restaurant": map[string]any{"id": 3, "name": "BigBoy Sài Gòn", "address": "Quận 1"},
				"table":      map[string]any{"number": 7, "capacity": 4, "status": "Available"},
				"token":      "server-token",
			},
			"message": "ok",
		})
	})

	session, err := service.Scan(context.Background(), "qr-abc")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if session.RestaurantID != 3 || session.RestaurantName != "BigBoy Sài Gòn" {
		t.Errorf("unexpected restaurant %+v", session)
	}
	if session.TableNumber != 7 || session.TableToken != "server-token" {
		t.Errorf("unexpected table %+v", session)
	}
}

func TestScanKeepsScannedTokenWhenOmitted(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"restaurant": map[string]any{"id": 3, "name": "BigBoy Sài Gòn"},
				"table":      map[string]any{"number": 7},
			},
			"message": "ok",
		})
	})

	session, err := service.Scan(context.Background(), "qr-abc")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if session.TableToken != "qr-abc" {
		t.Errorf("got token %q, want the scanned fallback", session.TableToken)
	}
}

func TestScanInvalidCode(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid QR code"})
	})

	if _, err := service.Scan(context.Background(), "bogus"); api.ErrorMessage(err) != "Invalid QR code" {
		t.Errorf("got %v, want the server message", err)
	}
}
