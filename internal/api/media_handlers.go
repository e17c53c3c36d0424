package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/1ekc/gfl-pages/internal/media"
)

// mediaView is the list representation sent to the UI. Binary payloads are
// not inlined; the UI resolves them through /api/media/resolve.
type mediaView struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Link  string `json:"link,omitempty"`
}

func viewsOf(items []media.Media) []mediaView {
	views := make([]mediaView, 0, len(items))
	for i := range items {
		m := &items[i]
		views = append(views, mediaView{
			Type:  string(m.Type),
			Name:  m.Name,
			Value: m.Value(),
			Link:  m.Link,
		})
	}
	return views
}

func (s *Server) mediaType(c *gin.Context) (media.Type, bool) {
	mediaType, ok := media.ParseType(c.Param("type"))
	if !ok {
		apiError(c, http.StatusNotFound, fmt.Errorf("unknown media type %q", c.Param("type")))
		return "", false
	}
	return mediaType, true
}

func (s *Server) handleMediaList(c *gin.Context) {
	mediaType, ok := s.mediaType(c)
	if !ok {
		return
	}
	feed := s.store.Items(mediaType)
	c.JSON(http.StatusOK, viewsOf(feed.Snapshot()))
}

type addLinkRequest struct {
	Name string `json:"name" binding:"required"`
	Link string `json:"link" binding:"required"`
}

func (s *Server) handleMediaAdd(c *gin.Context) {
	mediaType, ok := s.mediaType(c)
	if !ok {
		return
	}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req addLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apiError(c, http.StatusBadRequest, err)
			return
		}
		stored, err := s.store.AddLink(c.Request.Context(), mediaType, req.Name, req.Link)
		if err != nil {
			apiError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, viewsOf([]media.Media{*stored}))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apiError(c, http.StatusBadRequest, fmt.Errorf("multipart file or JSON link body required: %w", err))
		return
	}
	name := c.PostForm("name")
	if name == "" {
		name = file.Filename
	}

	src, err := file.Open()
	if err != nil {
		apiError(c, http.StatusBadRequest, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		apiError(c, http.StatusBadRequest, err)
		return
	}

	stored, err := s.store.AddData(c.Request.Context(), mediaType, name, data)
	if err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, viewsOf([]media.Media{*stored}))
}

func (s *Server) handleMediaDelete(c *gin.Context) {
	mediaType, ok := s.mediaType(c)
	if !ok {
		return
	}
	if err := s.store.Delete(c.Request.Context(), mediaType, c.Param("name")); err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleMediaResolve(c *gin.Context) {
	src := c.Query("src")
	resolved, err := s.store.ToDataURL(c.Request.Context(), src)
	if err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"src": src, "url": resolved})
}

func (s *Server) handleMediaImport(c *gin.Context) {
	var refs []string
	if err := c.ShouldBindJSON(&refs); err != nil {
		apiError(c, http.StatusBadRequest, err)
		return
	}
	mapping, err := s.importer.Import(c.Request.Context(), refs)
	if err != nil {
		apiError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, mapping)
}

func (s *Server) handleObject(c *gin.Context) {
	url := "blob:" + c.Param("id")
	data, ok := s.store.Object(url)
	if !ok {
		apiError(c, http.StatusNotFound, errors.New("unknown object"))
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
