package router

import "github.com/gin-gonic/gin"

// Module registers a feature's routes on the group it is mounted under.
// Web modules are mounted at "/", API modules at "/api".
type Module interface {
	Register(rg *gin.RouterGroup)
}

// ModuleFunc lets a single registration function act as a Module.
type ModuleFunc func(rg *gin.RouterGroup)

func (f ModuleFunc) Register(rg *gin.RouterGroup) { f(rg) }
