package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestServer_StatusJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	body := `{"updatedAt":"2026-08-27T12:00:00Z","services":[{"name":"Payments","status":"operational","statusCode":200}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(NewServer(zap.NewNop(), path, 0, 0).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/status.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	got, _ := io.ReadAll(resp.Body)
	if string(got) != body {
		t.Fatalf("body = %q", got)
	}
}

func TestServer_StatusJSONBeforeFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json") // never written

	ts := httptest.NewServer(NewServer(zap.NewNop(), path, 0, 0).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/status.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestServer_Healthz(t *testing.T) {
	ts := httptest.NewServer(NewServer(zap.NewNop(), "unused", 0, 0).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestServer_RateLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	// 60/min with burst 2: third immediate request is rejected
	ts := httptest.NewServer(NewServer(zap.NewNop(), path, 60, 2).Router())
	defer ts.Close()

	var last int
	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/status.json")
		if err != nil {
			t.Fatal(err)
		}
		last = resp.StatusCode
		resp.Body.Close()
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", last)
	}
}

func TestServer_CORSHeader(t *testing.T) {
	ts := httptest.NewServer(NewServer(zap.NewNop(), "unused", 0, 0).Router())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("Origin", "https://status.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ao := resp.Header.Get("Access-Control-Allow-Origin"); !strings.Contains(ao, "*") {
		t.Fatalf("allow-origin = %q", ao)
	}
}
