package rest

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/binharademo/trelloclone/pkg/ctxutil"
)

const (
	maxClientLogContent = 8 << 10
	defaultClientLogSrc = "client_logs.txt"
)

// ClientLogHandler records log lines sent by browser clients. Nothing is
// written to disk; the lines go through the server logger.
type ClientLogHandler struct {
	log *slog.Logger
}

func NewClientLogHandler(logger *slog.Logger) *ClientLogHandler {
	return &ClientLogHandler{log: logger.With("component", "client")}
}

type clientLogRequest struct {
	FilePath string `json:"filePath"`
	Content  string `json:"content"`
	Level    string `json:"level"`
}

// Log handles POST /logging/clientlog.
func (h *ClientLogHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req clientLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		writeError(w, http.StatusBadRequest, "log content is required")
		return
	}

	attrs := []slog.Attr{slog.String("source", clientLogSource(req.FilePath))}
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if len(content) > maxClientLogContent {
		content = strings.ToValidUTF8(content[:maxClientLogContent], "")
		attrs = append(attrs, slog.Bool("truncated", true))
	}
	attrs = append(attrs, slog.String("content", content))

	h.log.LogAttrs(r.Context(), clientLogLevel(req.Level), "client log", attrs...)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// clientLogSource keeps only the base name of the client-supplied path.
func clientLogSource(p string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(p), `\`, "/"))
	switch base {
	case "", ".", "/", "..":
		return defaultClientLogSrc
	}
	return base
}

func clientLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
