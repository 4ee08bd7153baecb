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

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiresponse.NewError(apiresponse.MsgUserFieldsRequired, lang))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		CC:    req.CC,
		Name:  req.Name,
		Tel:   req.Tel,
		Email: req.Email,
		Pass:  req.Pass,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			c.JSON(http.StatusConflict, apiresponse.NewError(apiresponse.MsgUserExists, lang))
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailCreateUser, lang))
		return
	}

	c.JSON(http.StatusCreated, apiresponse.NewSuccess(apiresponse.MsgUserCreated, lang, mapper.ToUserItem(user)))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailListUsers, lang))
		return
	}

	c.JSON(http.StatusOK, apiresponse.Response{
		Success: true,
		Data:    mapper.ToUserItems(users),
	})
}
