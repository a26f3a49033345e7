package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPushServiceSend(t *testing.T) {
	var received []expoPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewPushService(server.URL)
	err := svc.Send("ExponentPushToken[abc]", "Hola", "Mensaje", map[string]interface{}{"type": "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("expected 1 message, got %d", len(received))
	}
	if received[0].To != "ExponentPushToken[abc]" || received[0].Title != "Hola" {
		t.Fatalf("unexpected message: %+v", received[0])
	}
}

func TestPushServiceSendSkipsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty token")
	}))
	defer server.Close()

	svc := NewPushService(server.URL)
	if err := svc.Send("", "Hola", "Mensaje", nil); err != nil {
		t.Fatalf("empty token should be a no-op, got %v", err)
	}
}

func TestPushServiceSendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewPushService(server.URL)
	if err := svc.Send("token", "Hola", "Mensaje", nil); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestPushServiceBroadcast(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewPushService(server.URL)
	sent := svc.Broadcast([]string{"a", "b", "c", ""}, "Oferta", "25% de descuento")

	if calls != 3 {
		t.Fatalf("expected 3 delivery attempts, got %d", calls)
	}
	if sent != 2 {
		t.Fatalf("expected 2 successful sends, got %d", sent)
	}
}
