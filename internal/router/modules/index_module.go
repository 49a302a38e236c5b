package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/recipe-app/internal/interface/http"
)

type IndexModule struct {
	Handler *handlers.IndexController
}

func NewIndexModule(h *handlers.IndexController) *IndexModule { return &IndexModule{Handler: h} }

func (m *IndexModule) Register(rg *gin.RouterGroup) {
	rg.GET("", m.Handler.Index)
	rg.GET("/index", m.Handler.Index)
}
