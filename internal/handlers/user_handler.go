package handlers

import (
	"net/http"

	"inspirahub/internal/auth"
	"inspirahub/internal/middleware"
	"inspirahub/internal/models"
	"inspirahub/internal/services"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	authMW      gin.HandlerFunc
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authMW gin.HandlerFunc) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authMW:      authMW,
	}
}

// RegisterRoutes регистрирует маршруты пользователей.
// Все маршруты требуют аутентификации; список - только для админа.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(h.authMW)
	{
		users.GET("", middleware.RequireRoles(models.UserRoleAdmin), h.List)
		users.GET("/me", h.GetMe)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	response, err := h.userService.GetAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update обновляет профиль. Чужой профиль может менять только админ.
func (h *UserHandler) Update(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !auth.CanAccessResource(claims, id) {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !auth.CanAccessResource(claims, id) {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	if err := h.userService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User successfully deleted",
	})
}
