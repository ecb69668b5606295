// Package api exposes the codec to the editing UI over HTTP: upload a
// save, read the decoded aggregate, post edits, download the
// reconstructed bytes. Sessions are in-memory; the codec itself stays
// stateless.
package api

import (
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/gbakit/savekit/pkg/save"
	"github.com/gbakit/savekit/pkg/variant"
)

// session holds one uploaded save and its working roster. The mutex
// covers the entries' record bytes: edits write them and snapshot or
// reconstruct reads them, possibly from concurrent requests.
type session struct {
	mu        sync.Mutex
	container *save.Container
	entries   []*save.Entry
}

// Server serves the editing API.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates an empty Server.
func NewServer() *Server {
	return &Server{sessions: make(map[string]*session)}
}

// Register mounts the API routes.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/saves", s.handleUpload)
	e.GET("/v1/saves/:id", s.handleGet)
	e.POST("/v1/saves/:id/edits", s.handleEdits)
	e.GET("/v1/saves/:id/file", s.handleReconstruct)
	e.DELETE("/v1/saves/:id", s.handleDelete)
}

func (s *Server) handleUpload(c *echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "read body: "+err.Error())
	}

	var cfg variant.Config
	if name := c.QueryParam("variant"); name != "" {
		found := false
		for _, v := range variant.Builtin() {
			if v.Name == name {
				cfg, found = v, true
				break
			}
		}
		if !found {
			return writeBadRequest(c, "unknown variant: "+name)
		}
	} else {
		if cfg, err = save.Detect(data); err != nil {
			return writeBadRequest(c, "unrecognized save file")
		}
	}

	container, err := save.Parse(data, cfg, save.ParseOptions{})
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	// Snapshot before the session is published so no concurrent edit can
	// race the decode.
	snap, err := container.Snapshot()
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "decode_error", err.Error())
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{container: container, entries: container.Entries()}
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, uploadResponse{ID: id, Save: snap})
}

func (s *Server) handleGet(c *echo.Context) error {
	sess, ok := s.lookup(c.Param("id"))
	if !ok {
		return writeNotFound(c, "no such session")
	}
	sess.mu.Lock()
	snap, err := sess.container.Snapshot()
	sess.mu.Unlock()
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "decode_error", err.Error())
	}
	return c.JSON(http.StatusOK, snap)
}

func (s *Server) handleEdits(c *echo.Context) error {
	sess, ok := s.lookup(c.Param("id"))
	if !ok {
		return writeNotFound(c, "no such session")
	}
	req, err := decodeJSON[editRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "decode edits: "+err.Error())
	}
	sess.mu.Lock()
	err = applyEdits(sess.entries, req.Edits)
	sess.mu.Unlock()
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": len(req.Edits)})
}

func (s *Server) handleReconstruct(c *echo.Context) error {
	sess, ok := s.lookup(c.Param("id"))
	if !ok {
		return writeNotFound(c, "no such session")
	}
	sess.mu.Lock()
	out, err := save.Reconstruct(sess.container, sess.entries)
	sess.mu.Unlock()
	if err != nil {
		return writeError(c, http.StatusUnprocessableEntity, "reconstruct_error", err.Error())
	}
	return c.Blob(http.StatusOK, "application/octet-stream", out)
}

func (s *Server) handleDelete(c *echo.Context) error {
	s.mu.Lock()
	delete(s.sessions, c.Param("id"))
	s.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}
