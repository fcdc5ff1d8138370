package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchange admin credentials for a signed 7-day bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Credentials"
//	@Success		200		{object}	service.LoginResult
//	@Failure		401		{object}	serializer.ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}

	c.JSON(http.StatusOK, res)
}
