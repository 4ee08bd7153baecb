package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daveshb/taskload/internal/adapter/http/middleware"
	"github.com/daveshb/taskload/pkg/apiresponse"
)

type HelloHandler struct{}

func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

func (h *HelloHandler) Hello(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusOK, apiresponse.NewSuccess(apiresponse.MsgHello, lang, nil))
}
