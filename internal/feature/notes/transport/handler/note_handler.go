// Package handler provides the HTTP handlers for the notes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"notes_backend/internal/api"
	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/feature/notes/usecase"
	jwtmw "notes_backend/internal/platform/jwt"
)

// NotesUsecase defines the usecase for note operations.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type NotesUsecase interface {
	// Create validates and stores a new note owned by userID.
	Create(ctx context.Context, userID uint, title, content string) (*entity.Note, error)
	// List returns the caller's notes newest first, optionally filtered.
	List(ctx context.Context, userID uint, query string) ([]entity.Note, error)
	// Get returns one of the caller's notes.
	Get(ctx context.Context, userID, id uint) (*entity.Note, error)
	// Update applies changes to one of the caller's notes.
	Update(ctx context.Context, userID, id uint, title, content string) (*entity.Note, error)
	// Delete removes one of the caller's notes.
	Delete(ctx context.Context, userID, id uint) error
}

// NoteHandler handles HTTP requests for note CRUD. Every route it serves
// sits behind the auth middleware, so the user ID is read from the request
// context.
type NoteHandler struct {
	notes NotesUsecase
}

// NewNoteHandler creates a new NoteHandler instance.
func NewNoteHandler(notes NotesUsecase) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// toAPINote projects a note entity into its response shape.
func toAPINote(n *entity.Note) api.Note {
	return api.Note{
		Id:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserId:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// callerID extracts the authenticated user ID, aborting with 401 when the
// middleware did not run. That would be a routing bug, not a user error.
func callerID(c *gin.Context) (uint, bool) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
		return 0, false
	}
	return userID, true
}

// noteID parses the :id path parameter. Unparsable IDs are reported exactly
// like missing notes so malformed probes learn nothing.
func noteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "note not found"})
		return 0, false
	}
	return uint(id), true
}

// Create handles note creation.
// - 400 when title or content is blank
// - 201 with the stored note on success
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req api.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("note create bind failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	note, err := h.notes.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.renderError(c, userID, "create", err)
		return
	}

	slog.Info("note created", "note_id", note.ID, "user_id", userID)
	c.JSON(http.StatusCreated, toAPINote(note))
}

// List handles listing the caller's notes, optionally filtered by ?q=.
func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	notes, err := h.notes.List(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		h.renderError(c, userID, "list", err)
		return
	}

	out := make([]api.Note, 0, len(notes))
	for i := range notes {
		out = append(out, toAPINote(&notes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles fetching a single note by ID.
// - 404 when the note is absent or owned by another user
func (h *NoteHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.notes.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.renderError(c, userID, "get", err)
		return
	}

	c.JSON(http.StatusOK, toAPINote(note))
}

// Update handles replacing a note's title and content.
// - 400 on blank fields, 404 when absent, 403 when owned by another user
func (h *NoteHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	var req api.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("note update bind failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	note, err := h.notes.Update(c.Request.Context(), userID, id, req.Title, req.Content)
	if err != nil {
		h.renderError(c, userID, "update", err)
		return
	}

	slog.Info("note updated", "note_id", note.ID, "user_id", userID)
	c.JSON(http.StatusOK, toAPINote(note))
}

// Delete handles removing a note.
// - 404 when absent, 403 when owned by another user
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), userID, id); err != nil {
		h.renderError(c, userID, "delete", err)
		return
	}

	slog.Info("note deleted", "note_id", id, "user_id", userID)
	c.JSON(http.StatusOK, api.DeleteNoteResponse{Success: true, Message: "note deleted successfully"})
}

// renderError maps usecase errors onto the response status vocabulary.
func (h *NoteHandler) renderError(c *gin.Context, userID uint, op string, err error) {
	switch {
	case usecase.IsValidationError(err):
		slog.Warn("note validation failed", "op", op, "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "note not found"})
	case errors.Is(err, usecase.ErrForbidden):
		slog.Warn("note ownership violation", "op", op, "user_id", userID)
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "unauthorized"})
	default:
		slog.Error("note operation failed", "op", op, "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + op + " note"})
	}
}
