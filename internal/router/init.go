package router

import (
	"github.com/oksasatya/inotebook/internal/container"
	handlers "github.com/oksasatya/inotebook/internal/interface/http"
	"github.com/oksasatya/inotebook/internal/interface/middleware"
	"github.com/oksasatya/inotebook/internal/router/modules"
)

// InitModules builds the services and handlers from the container and
// registers every feature module with the registry.
func InitModules(r *Registry, c *container.Container) {
	gate := middleware.Auth(c.Tokens, c.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.UserService(), c.Logger), gate))
	r.Add(modules.NewNoteModule(handlers.NewNoteHandler(c.NoteService(), c.Logger), gate))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(c.Store, c.Logger)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
