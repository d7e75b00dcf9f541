package handlers

import (
	"net/http"

	"inspirahub/internal/auth"
	"inspirahub/internal/services"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
	authMW         gin.HandlerFunc
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService, authMW gin.HandlerFunc) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
		authMW:         authMW,
	}
}

// RegisterRoutes регистрирует маршруты контента.
// Чтение открыто, запись - только для аутентифицированных.
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contents := rg.Group("/contents")
	{
		contents.GET("", h.List)
		contents.GET("/:id", h.GetByID)
	}

	protected := rg.Group("/contents")
	protected.Use(h.authMW)
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *ContentHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	contents, err := h.contentService.GetAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contents": contents})
}

func (h *ContentHandler) GetByID(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	content, err := h.contentService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// Create создает контент. Владелец всегда берется из токена.
func (h *ContentHandler) Create(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	var req dto.CreateContentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	content, err := h.contentService.Create(claims.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) Update(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !h.authorizeOwner(c, claims, id) {
		return
	}

	var req dto.UpdateContentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	content, err := h.contentService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !h.authorizeOwner(c, claims, id) {
		return
	}

	if err := h.contentService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content successfully deleted",
	})
}

// authorizeOwner проверяет, что контент принадлежит автору запроса
// или запрос сделан админом. Несуществующий контент дает 404 до 403.
func (h *ContentHandler) authorizeOwner(c *gin.Context, claims *auth.Claims, contentID int64) bool {
	ownerID, err := h.contentService.OwnerOf(contentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return false
	}

	if !auth.CanAccessResource(claims, ownerID) {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return false
	}

	return true
}
