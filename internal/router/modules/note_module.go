package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/inotebook/internal/interface/http"
)

// NoteModule mounts the note routes. Every route sits behind the auth gate.
type NoteModule struct {
	Handler *handlers.NoteHandler
	Gate    gin.HandlerFunc
}

func NewNoteModule(h *handlers.NoteHandler, gate gin.HandlerFunc) *NoteModule {
	return &NoteModule{Handler: h, Gate: gate}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	notes := rg.Group("/notes", m.Gate)
	{
		notes.GET("/fetchallnotes", m.Handler.FetchAll)
		notes.POST("/addnote", m.Handler.Add)
		notes.PUT("/updatenote/:id", m.Handler.Update)
		notes.DELETE("/deletenote/:id", m.Handler.Delete)
	}
}
