package api

import (
	"github.com/gin-gonic/gin"

	"github.com/1ekc/gfl-pages/internal/logging"
)

// handleMediaFeed upgrades to WebSocket and pushes every feed snapshot for
// the requested type until the client goes away or the store shuts down.
func (s *Server) handleMediaFeed(c *gin.Context) {
	mediaType, ok := s.mediaType(c)
	if !ok {
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		s.logger.Debug("websocket upgrade failed", logging.Error(err))
		return
	}
	defer conn.Close()

	ch, cancel := s.store.Items(mediaType).Subscribe()
	defer cancel()

	// Reads only serve to notice the peer closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, open := <-ch:
			if !open {
				return
			}
			if err := conn.WriteJSON(viewsOf(snapshot)); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
