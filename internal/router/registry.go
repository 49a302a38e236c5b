package router

import "github.com/gin-gonic/gin"

// Registry collects modules for the two route groups: server-rendered pages at the root and
// the JSON API under /api.
type Registry struct {
	Engine         *gin.Engine
	Web            *gin.RouterGroup
	API            *gin.RouterGroup
	middlewares    []gin.HandlerFunc
	webMiddlewares []gin.HandlerFunc
	apiMiddlewares []gin.HandlerFunc
	webModules     []Module
	modules        []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Web: engine.Group("/"), API: engine.Group("/api")}
}

// Use adds middleware to both groups.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) UseWeb(mw ...gin.HandlerFunc) {
	r.webMiddlewares = append(r.webMiddlewares, mw...)
}

func (r *Registry) UseAPI(mw ...gin.HandlerFunc) {
	r.apiMiddlewares = append(r.apiMiddlewares, mw...)
}

// Add registers an API module.
func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// AddWeb registers a module serving HTML pages.
func (r *Registry) AddWeb(mod Module) {
	r.webModules = append(r.webModules, mod)
}

func (r *Registry) RegisterAll() {
	r.Web.Use(r.middlewares...)
	r.Web.Use(r.webMiddlewares...)
	r.API.Use(r.middlewares...)
	r.API.Use(r.apiMiddlewares...)
	for _, m := range r.webModules {
		m.Register(r.Web)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
