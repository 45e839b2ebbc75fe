package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/internal/application"
	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/internal/interface/middleware"
	"github.com/oksasatya/inotebook/pkg/response"
)

const msgNoteNotFound = "Note not found"

type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

type updatedNoteResponse struct {
	Note *entity.Note `json:"note"`
}

type deletedNoteResponse struct {
	Success string       `json:"success"`
	Note    *entity.Note `json:"note"`
}

func owner(c *gin.Context) (entity.UserID, bool) {
	uid, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		writeError(c, application.ErrUnauthenticated, "")
	}
	return uid, ok
}

// FetchAll GET /api/notes/fetchallnotes
func (h *NoteHandler) FetchAll(c *gin.Context) {
	uid, ok := owner(c)
	if !ok {
		return
	}
	notes, err := h.Svc.ListNotes(c.Request.Context(), uid)
	if err != nil {
		writeError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, notes, "notes fetched", gin.H{"count": len(notes)})
}

// Add POST /api/notes/addnote
func (h *NoteHandler) Add(c *gin.Context) {
	uid, ok := owner(c)
	if !ok {
		return
	}
	var req application.NoteInput
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.Svc.AddNote(c.Request.Context(), uid, req)
	if err != nil {
		writeError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, n, "note added", nil)
}

// Update PUT /api/notes/updatenote/:id
func (h *NoteHandler) Update(c *gin.Context) {
	uid, ok := owner(c)
	if !ok {
		return
	}
	var req application.NotePatchInput
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.Svc.UpdateNote(c.Request.Context(), uid, entity.NoteID(c.Param("id")), req)
	if err != nil {
		writeError(c, err, msgNoteNotFound)
		return
	}
	response.Success(c, http.StatusOK, updatedNoteResponse{Note: n}, "note updated", nil)
}

// Delete DELETE /api/notes/deletenote/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	uid, ok := owner(c)
	if !ok {
		return
	}
	n, err := h.Svc.DeleteNote(c.Request.Context(), uid, entity.NoteID(c.Param("id")))
	if err != nil {
		writeError(c, err, msgNoteNotFound)
		return
	}
	response.Success(c, http.StatusOK, deletedNoteResponse{Success: "Note has been deleted", Note: n}, "note deleted", nil)
}
