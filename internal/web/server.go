package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/coder/websocket"

	"github.com/CAMongrel/mytcglib/core"
	"github.com/CAMongrel/mytcglib/eventlog"
	"github.com/CAMongrel/mytcglib/internal/view"
	"github.com/CAMongrel/mytcglib/skirmish"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Attack int    `json:"attack"`
	Health int    `json:"health"`
}

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Cards  []string `json:"cards"`
}

// Server is the skirmish spectator server: it lists cards and decks and
// streams bot-versus-bot matches over a websocket.
type Server struct {
	decksFile string
	mux       *http.ServeMux
}

// NewServer creates a new web server reading deck lists from decksFile.
func NewServer(decksFile string) (*Server, error) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static files: %w", err)
	}

	s := &Server{
		decksFile: decksFile,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes(staticFS)
	return s, nil
}

func (s *Server) setupRoutes(staticFS fs.FS) {
	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	// Static CSS/JS
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)

	// WebSocket match stream
	s.mux.HandleFunc("GET /ws/watch", s.handleWatch)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(skirmish.CardRegistry))
	for name := range skirmish.CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	var cards []CardInfo
	for _, name := range names {
		u, ok := skirmish.LookupCard(name).(*skirmish.UnitCard)
		if !ok {
			continue
		}
		cards = append(cards, CardInfo{
			Name:   name,
			Cost:   u.Cost(),
			Attack: u.AttackValue(),
			Health: u.MaxHealth(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.decksFile)
	if err != nil {
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}

	df, err := parseDeckFileYAML(data)
	if err != nil {
		http.Error(w, "could not parse decks file", http.StatusInternalServerError)
		return
	}

	var decks []DeckInfo
	for i, d := range df.Decks {
		di := DeckInfo{
			Number: i + 1,
			Name:   d.Name,
		}
		// Unique card names for display
		seen := make(map[string]bool)
		for _, c := range d.Cards {
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		decks = append(decks, di)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decks)
}

// watchRequest is the browser's opening message on /ws/watch.
type watchRequest struct {
	Type  string `json:"type"`
	DeckA int    `json:"deck_a"`
	DeckB int    `json:"deck_b"`
}

// watchMessage is the envelope for all stream messages to the browser.
type watchMessage struct {
	Type   string          `json:"type"`
	Event  *view.EventView `json:"event,omitempty"`
	Winner int             `json:"winner,omitempty"`
	Result string          `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// streamLogger forwards each recorded event, Seq already assigned, to the
// websocket writer.
type streamLogger struct {
	eventlog.MemoryLogger
	notify func(eventlog.Event)
}

func (l *streamLogger) Record(event eventlog.Event) {
	l.MemoryLogger.Record(event)
	l.notify(l.LastEvent())
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	_, reqData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("WebSocket read watch request: %v", err)
		return
	}
	var req watchRequest
	if err := json.Unmarshal(reqData, &req); err != nil || req.Type != "watch" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected watch message")
		return
	}
	if req.DeckA == 0 {
		req.DeckA = 1
	}
	if req.DeckB == 0 {
		req.DeckB = 2
	}

	nameA, listA, err := skirmish.DeckByNumber(s.decksFile, req.DeckA)
	if err != nil {
		s.writeWatchError(ctx, wsConn, fmt.Sprintf("deck A: %v", err))
		return
	}
	nameB, listB, err := skirmish.DeckByNumber(s.decksFile, req.DeckB)
	if err != nil {
		s.writeWatchError(ctx, wsConn, fmt.Sprintf("deck B: %v", err))
		return
	}

	events := make(chan eventlog.Event, 256)
	logger := &streamLogger{notify: func(e eventlog.Event) {
		select {
		case events <- e:
		default: // a stalled client drops events rather than the match
		}
	}}

	m, err := skirmish.NewMatch(skirmish.Config{
		Heroes: [2]*skirmish.HeroPlayer{
			skirmish.NewHeroPlayer(nameA, false),
			skirmish.NewHeroPlayer(nameB, false),
		},
		Controllers: [2]skirmish.Controller{
			skirmish.NewBotController(),
			skirmish.NewBotController(),
		},
		DeckLists: [2][]core.Card{listA, listB},
		Logger:    logger,
	})
	if err != nil {
		s.writeWatchError(ctx, wsConn, err.Error())
		return
	}

	go func() {
		defer close(events)
		if _, err := m.Run(); err != nil {
			log.Printf("match run: %v", err)
		}
	}()

	for e := range events {
		ev := view.NewEventView(e)
		if err := s.writeWatch(ctx, wsConn, watchMessage{Type: "event", Event: &ev}); err != nil {
			return
		}
	}
	s.writeWatch(ctx, wsConn, watchMessage{
		Type:   "over",
		Winner: m.Winner(),
		Result: m.Result(),
	})
	wsConn.Close(websocket.StatusNormalClosure, "match ended")
}

func (s *Server) writeWatch(ctx context.Context, c *websocket.Conn, msg watchMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, data)
}

func (s *Server) writeWatchError(ctx context.Context, c *websocket.Conn, details string) {
	s.writeWatch(ctx, c, watchMessage{Type: "error", Error: details})
	c.Close(websocket.StatusNormalClosure, "request failed")
}

// ServeHTTP makes the server usable as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
