package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

func TestSlack_DownMessage(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	if err := s.Send(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(got, "Payments") || !strings.Contains(got, "DOWN") {
		t.Fatalf("message not as expected: %q", got)
	}
	if !strings.Contains(got, "500") {
		t.Fatalf("message should carry the HTTP status: %q", got)
	}
}

func TestSlack_RecoveryMessage(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	ev := sampleEvent()
	ev.Previous, ev.New = domain.Down, domain.Operational
	ev.HTTPStatus = 200
	if err := NewSlack(ts.URL).Send(context.Background(), ev); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(got, "RECOVERED") {
		t.Fatalf("message not as expected: %q", got)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	if err := NewSlack(ts.URL).Send(context.Background(), sampleEvent()); err == nil {
		t.Fatal("expected error on non-2xx")
	}
}
