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

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
	authMW         gin.HandlerFunc
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService, authMW gin.HandlerFunc) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
		authMW:         authMW,
	}
}

// RegisterRoutes регистрирует комментарии под контентом плюс
// админскую поверхность модерации.
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	comments := rg.Group("/contents/:id/comments")
	{
		comments.GET("", h.ListByContent)
	}

	protected := rg.Group("/contents/:id/comments")
	protected.Use(h.authMW)
	{
		protected.POST("", h.Create)
		protected.PUT("/:commentId", h.Update)
		protected.DELETE("/:commentId", h.Delete)
	}

	moderation := rg.Group("/comments")
	moderation.Use(h.authMW, middleware.RequireRoles(models.UserRoleAdmin))
	{
		moderation.GET("", h.ListAll)
		moderation.DELETE("/:id", h.ModerateDelete)
	}
}

func (h *CommentHandler) ListByContent(c *gin.Context) {
	contentID, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	comments, err := h.commentService.GetByContent(contentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) Create(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	contentID, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(claims.UserID, claims.Subject, contentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	commentID, err := ParseParamID(c, "commentId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !h.authorizeOwner(c, claims, commentID) {
		return
	}

	var req dto.UpdateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.commentService.Update(commentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	commentID, err := ParseParamID(c, "commentId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !h.authorizeOwner(c, claims, commentID) {
		return
	}

	if err := h.commentService.Delete(commentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment successfully deleted",
	})
}

// ListAll - админский список всех комментариев для модерации
func (h *CommentHandler) ListAll(c *gin.Context) {
	limit, offset := ParsePagination(c)

	comments, err := h.commentService.GetAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ModerateDelete удаляет комментарий по id без проверки владельца:
// маршрут уже закрыт RequireRoles(Admin).
func (h *CommentHandler) ModerateDelete(c *gin.Context) {
	commentID, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.commentService.Delete(commentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment successfully deleted",
	})
}

func (h *CommentHandler) authorizeOwner(c *gin.Context, claims *auth.Claims, commentID int64) bool {
	ownerID, err := h.commentService.OwnerOf(commentID)
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
