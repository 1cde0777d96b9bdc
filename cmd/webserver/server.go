package main

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nonono109/snaker/pkg/game"
	"github.com/nonono109/snaker/pkg/input"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ServerMessage is pushed to the browser
type ServerMessage struct {
	Type   string      `json:"type"`
	Config *GameConfig `json:"config,omitempty"`
	State  *game.Event `json:"state,omitempty"`
}

// ClientMessage is a button tap or key press from the browser
type ClientMessage struct {
	Action string `json:"action"`
}

// GameConfig is sent once on connect
type GameConfig struct {
	GridSize     int               `json:"gridSize"`
	Difficulties []game.Difficulty `json:"difficulties"`
	Intervals    map[string]int64  `json:"intervals"` // Milliseconds per move
}

// GameServer plays one session per websocket connection
type GameServer struct {
	store   game.HighScoreStore
	options []game.Option
}

// NewGameServer creates a server whose sessions share store
func NewGameServer(store game.HighScoreStore, opts ...game.Option) *GameServer {
	return &GameServer{store: store, options: opts}
}

func (gs *GameServer) newSession() *game.Session {
	opts := append([]game.Option{game.WithStore(gs.store)}, gs.options...)
	return game.NewSession(opts...)
}

// handleAction applies a client action to the session
func handleAction(session *game.Session, adapter *input.Adapter, action string) bool {
	if name, ok := strings.CutPrefix(action, "diff_"); ok {
		d, valid := game.ParseDifficulty(name)
		return valid && session.SetDifficulty(d)
	}
	return adapter.Handle(input.Symbol(action))
}

func gameConfig() GameConfig {
	cfg := GameConfig{
		Difficulties: game.Difficulties,
		Intervals:    make(map[string]int64, len(game.Difficulties)),
	}
	for _, d := range game.Difficulties {
		cfg.Intervals[d.String()] = d.Interval().Milliseconds()
	}
	return cfg
}

// HandleWebSocket upgrades the request and runs a session until the client leaves
func (gs *GameServer) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	log.Println("New WebSocket connection from:", r.RemoteAddr)

	session := gs.newSession()
	defer session.Close()
	adapter := input.NewAdapter(session)

	// Mutex to protect concurrent writes to the WebSocket connection
	var writeMu sync.Mutex
	var lastVersion uint64
	safeWriteState := func(ev game.Event) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		if ev.Version < lastVersion {
			return nil // A newer state already went out
		}
		lastVersion = ev.Version
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(ServerMessage{Type: "state", State: &ev})
	}

	cfg := gameConfig()
	cfg.GridSize = session.Snapshot().Board.GridSize
	writeMu.Lock()
	err = conn.WriteJSON(ServerMessage{Type: "config", Config: &cfg})
	writeMu.Unlock()
	if err != nil {
		log.Println("Write error:", err)
		return
	}
	if err := safeWriteState(session.Snapshot()); err != nil {
		log.Println("Write error:", err)
		return
	}

	cancel := session.Subscribe(func(ev game.Event) {
		if err := safeWriteState(ev); err != nil {
			log.Println("Write error:", err)
		}
	})
	defer cancel()

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("Read error:", err)
			}
			return
		}
		handleAction(session, adapter, msg.Action)
	}
}

const writeWait = 5 * time.Second
