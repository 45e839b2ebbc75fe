package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes on a RouterGroup
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules and mounts them under /api.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	modules []Module
	mounted bool
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts every added module once. gin panics on duplicate routes,
// so repeated calls are no-ops.
func (r *Registry) RegisterAll() {
	if r.mounted {
		return
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
	r.mounted = true
}
