package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/CAMongrel/mytcglib/skirmish"
)

const testDecksYAML = `decks:
  - name: Rust and Ruin
    cards:
      - name: Scrap Rat
        count: 4
      - name: Gutter Hound
        count: 4
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decks.yaml")
	if err := os.WriteFile(path, []byte(testDecksYAML), 0o644); err != nil {
		t.Fatalf("write decks file: %v", err)
	}
	srv, err := NewServer(path)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func TestIndexPageServed(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty index page")
	}
}

func TestCardsEndpointListsRegistry(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/api/cards", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/cards status = %d, want 200", rec.Code)
	}
	var cards []CardInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("decode cards: %v", err)
	}
	if len(cards) != len(skirmish.CardRegistry) {
		t.Fatalf("%d cards listed, registry has %d", len(cards), len(skirmish.CardRegistry))
	}
	for _, c := range cards {
		if _, ok := skirmish.CardRegistry[c.Name]; !ok {
			t.Fatalf("unknown card %q in listing", c.Name)
		}
	}
}

func TestDecksEndpointListsDeckFile(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/api/decks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/decks status = %d, want 200", rec.Code)
	}
	var decks []DeckInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &decks); err != nil {
		t.Fatalf("decode decks: %v", err)
	}
	if len(decks) != 1 || decks[0].Name != "Rust and Ruin" || decks[0].Number != 1 {
		t.Fatalf("decks = %+v", decks)
	}
	if len(decks[0].Cards) != 2 {
		t.Fatalf("deck card names = %v, want 2 unique", decks[0].Cards)
	}
}
