package lawapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResponse = `{
  "LawSearch": {
    "totalCnt": "2",
    "law": [
      {"법령명한글": "민법", "법령ID": "001706", "공포일자": "19580222", "소관부처명": "법무부"},
      {"법령명한글": "민사소송법", "법령ID": "001263", "공포일자": "20020126", "소관부처명": "법무부"}
    ]
  }
}`

func TestSearchStatutes(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		if r.URL.Query().Get("OC") != "test-id" {
			t.Errorf("missing OC parameter, got %q", r.URL.Query().Get("OC"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := New("test-id")
	c.baseURL = srv.URL

	hits, err := c.SearchStatutes(context.Background(), "대여금", 5)
	if err != nil {
		t.Fatalf("SearchStatutes: %v", err)
	}
	if gotQuery != "대여금" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Name != "민법" || hits[0].LawID != "001706" {
		t.Fatalf("unexpected first hit: %+v", hits[0])
	}
	if hits[1].Line() == "" {
		t.Fatal("Line must render")
	}
}

func TestSearchStatutesLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := New("test-id")
	c.baseURL = srv.URL
	hits, err := c.SearchStatutes(context.Background(), "민사", 1)
	if err != nil {
		t.Fatalf("SearchStatutes: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("limit not applied: %d hits", len(hits))
	}
}

func TestDisabledClientDoesNotCallOut(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New("")
	c.baseURL = srv.URL
	hits, err := c.SearchStatutes(context.Background(), "민법", 5)
	if err != nil || hits != nil {
		t.Fatalf("disabled client: hits=%v err=%v", hits, err)
	}
	if called {
		t.Fatal("disabled client must not issue requests")
	}
	if c.Enabled() {
		t.Fatal("Enabled must be false without an API ID")
	}
}

func TestSearchStatutesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New("test-id")
	c.baseURL = srv.URL
	if _, err := c.SearchStatutes(context.Background(), "민법", 5); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}