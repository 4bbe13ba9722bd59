package server

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/progress"
)

// closeGracePeriod bounds how long a close frame may take to write
const closeGracePeriod = time.Second

// wsSender writes progress events to one websocket connection
type wsSender struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func (s *wsSender) Send(ev model.ProgressEvent) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(progress.ToMessage(ev))
}

func (s *wsSender) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
	return s.conn.Close()
}

func newUpgrader(allowed []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowed, origin)
		},
	}
}

// handleProgressSocket registers the connection as the client's session and
// keeps it until the client leaves or the session is closed after a download.
func (s *Server) handleProgressSocket(c *gin.Context) {
	clientID := c.Param("client_id")
	logger := s.logger.With("client_id", clientID)

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already replied to the client
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sender := &wsSender{conn: conn, writeTimeout: s.cfg.WriteTimeout}
	ch, err := s.sessions.Register(clientID, sender)
	if err != nil {
		var dup *model.DuplicateSessionError
		reason := err.Error()
		code := websocket.CloseInternalServerErr
		if errors.As(err, &dup) {
			code = websocket.ClosePolicyViolation
		}
		msg := websocket.FormatCloseMessage(code, reason)
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		_ = conn.Close()
		logger.Warn("websocket rejected", "error", err)
		return
	}

	logger.Info("websocket connected")
	s.readUntilGone(conn, logger)
	s.sessions.Remove(ch)
	logger.Info("websocket disconnected")
}

// readUntilGone drains client frames; the content is ignored
func (s *Server) readUntilGone(conn *websocket.Conn, logger hclog.Logger) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket read ended", "error", err)
			}
			return
		}
	}
}
