// Package ws serves the real-time board channel over WebSocket.
//
// A client connects once, then joins and leaves board groups by sending
// {"action":"join","boardId":"..."} or {"action":"leave","boardId":"..."}.
// Each request is answered with an ack or an error frame, and every event
// published for a joined board is pushed as a JSON envelope.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/binharademo/trelloclone/internal/config"
	"github.com/binharademo/trelloclone/internal/realtime"
	"github.com/binharademo/trelloclone/pkg/ctxutil"
)

const (
	actionJoin  = "join"
	actionLeave = "leave"

	frameAck   = "ack"
	frameError = "error"
)

type eventBus interface {
	Connect() *realtime.Conn
	Disconnect(c *realtime.Conn)
	JoinBoard(id realtime.ConnID, board uuid.UUID) error
	LeaveBoard(id realtime.ConnID, board uuid.UUID)
}

type clientMessage struct {
	Action  string `json:"action"`
	BoardID string `json:"boardId"`
}

type replyFrame struct {
	Type    string     `json:"type"`
	Action  string     `json:"action,omitempty"`
	BoardID *uuid.UUID `json:"boardId,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type readMessage struct {
	data []byte
	err  error
}

// Handler upgrades requests and pumps events to the client.
type Handler struct {
	bus      eventBus
	cfg      config.RealtimeConfig
	log      *slog.Logger
	upgrader websocket.Upgrader

	shutdown     chan struct{}
	shutdownOnce sync.Once
	active       sync.WaitGroup
}

// NewHandler creates a Handler. allowedOrigins is the comma separated CORS
// origin list; "*" accepts any origin.
func NewHandler(logger *slog.Logger, bus eventBus, cfg config.RealtimeConfig, allowedOrigins string) *Handler {
	origins := strings.Split(allowedOrigins, ",")
	return &Handler{
		bus: bus,
		cfg: cfg,
		log: logger.With("handler", "ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), r.Host, origins)
			},
		},
		shutdown: make(chan struct{}),
	}
}

// Shutdown asks every open connection to close and waits for them to
// finish. Hijacked connections are not tracked by http.Server.Shutdown.
func (h *Handler) Shutdown() {
	h.shutdownOnce.Do(func() { close(h.shutdown) })
	h.active.Wait()
}

// ServeHTTP handles GET /ws.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.shutdown:
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	default:
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.WarnContext(r.Context(), "upgrade failed", slog.String("error", err.Error()))
		return
	}

	h.active.Add(1)
	defer h.active.Done()
	defer conn.Close()

	sub := h.bus.Connect()
	defer h.bus.Disconnect(sub)

	log := h.log.With(slog.String("conn_id", string(sub.ID())))
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		log = log.With(slog.String("user_id", userID.String()))
	}
	log.DebugContext(r.Context(), "connection opened")

	pongWait := 2 * h.cfg.PingInterval
	conn.SetReadLimit(h.cfg.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)

	readChan := make(chan readMessage, 16)
	go func() {
		defer close(readChan)
		for {
			_, data, err := conn.ReadMessage()
			select {
			case readChan <- readMessage{data: data, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(h.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-h.shutdown:
			h.writeClose(conn, websocket.CloseGoingAway, "server shutting down")
			return

		case msg, ok := <-readChan:
			if !ok {
				return
			}
			if msg.err != nil {
				if websocket.IsUnexpectedCloseError(msg.err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug("read failed", slog.String("error", msg.err.Error()))
				}
				return
			}
			if err := h.write(conn, h.handleMessage(sub.ID(), msg.data)); err != nil {
				log.Debug("write reply failed", slog.String("error", err.Error()))
				return
			}

		case evt, ok := <-sub.Events():
			if !ok {
				return
			}
			data, err := realtime.EncodeEvent(evt)
			if err != nil {
				log.Error("encode event", slog.String("error", err.Error()))
				continue
			}
			if err := h.writeRaw(conn, data); err != nil {
				log.Debug("write event failed", slog.String("error", err.Error()))
				return
			}

		case <-ping.C:
			deadline := time.Now().Add(h.cfg.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				log.Debug("ping failed", slog.String("error", err.Error()))
				return
			}
		}
	}
}

// handleMessage applies one client request and returns the reply frame.
func (h *Handler) handleMessage(id realtime.ConnID, data []byte) replyFrame {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return replyFrame{Type: frameError, Error: "malformed message"}
	}

	boardID, err := uuid.Parse(msg.BoardID)
	if err != nil {
		return replyFrame{Type: frameError, Action: msg.Action, Error: "invalid boardId"}
	}

	switch msg.Action {
	case actionJoin:
		if err := h.bus.JoinBoard(id, boardID); err != nil {
			return replyFrame{Type: frameError, Action: msg.Action, BoardID: &boardID, Error: err.Error()}
		}
	case actionLeave:
		h.bus.LeaveBoard(id, boardID)
	default:
		return replyFrame{Type: frameError, Action: msg.Action, Error: "unknown action"}
	}
	return replyFrame{Type: frameAck, Action: msg.Action, BoardID: &boardID}
}

func (h *Handler) write(conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return h.writeRaw(conn, data)
}

func (h *Handler) writeRaw(conn *websocket.Conn, data []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Handler) writeClose(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(h.cfg.WriteTimeout)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}

// originAllowed accepts requests without an Origin header, same-host
// origins, and origins listed in allowed.
func originAllowed(origin, host string, allowed []string) bool {
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == host {
		return true
	}
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
