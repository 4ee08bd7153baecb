package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daveshb/taskload/internal/adapter/http/dto"
	"github.com/daveshb/taskload/internal/adapter/http/mapper"
	"github.com/daveshb/taskload/internal/adapter/http/middleware"
	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
	"github.com/daveshb/taskload/pkg/apiresponse"
)

type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Login answers the same 401 body whether the email is unknown or the
// password is wrong. No session or token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiresponse.NewError(apiresponse.MsgLoginFieldsRequired, lang))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Pass)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apiresponse.NewError(apiresponse.MsgInvalidCredentials, lang))
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailLogin, lang))
		return
	}

	c.JSON(http.StatusOK, apiresponse.NewSuccess(apiresponse.MsgLoginSuccess, lang, mapper.ToLoginData(user)))
}
