package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/story"
)

func (s *Server) handleStoryGet(c *gin.Context) {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	c.JSON(http.StatusOK, s.doc)
}

func (s *Server) handleStoryPut(c *gin.Context) {
	doc := story.New()
	if err := c.ShouldBindJSON(doc); err != nil {
		apiError(c, http.StatusBadRequest, err)
		return
	}

	s.docMu.Lock()
	defer s.docMu.Unlock()
	// Persist before swapping anything in: a failed save must leave the
	// served document and the allocator on the last persisted state.
	if err := s.project.SaveStory(doc); err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	s.doc = doc
	// A replaced document is a fresh load: reseed before any allocation.
	s.alloc.Seed(doc)
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleLineAppend(c *gin.Context) {
	s.docMu.Lock()
	defer s.docMu.Unlock()

	line := story.NewTextLine(s.alloc)
	s.doc.Append(line)
	if err := s.project.SaveStory(s.doc); err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Debug("line appended", slog.String(logging.FieldLineID, line.ID))
	c.JSON(http.StatusCreated, line)
}

func (s *Server) handleLineRemove(c *gin.Context) {
	s.docMu.Lock()
	defer s.docMu.Unlock()

	if !s.doc.Remove(c.Param("id")) {
		apiError(c, http.StatusNotFound, errors.New("unknown line id"))
		return
	}
	if err := s.project.SaveStory(s.doc); err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Debug("line removed", slog.String(logging.FieldLineID, c.Param("id")))
	c.Status(http.StatusNoContent)
}
