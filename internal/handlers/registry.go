package handlers

import (
	"inspirahub/internal/auth"
	"inspirahub/internal/middleware"
	"inspirahub/internal/services"
	"inspirahub/internal/validator"
)

// AppHandlers собирает все обработчики приложения
type AppHandlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Content *ContentHandler
	Comment *CommentHandler
}

// NewAppHandlers связывает сервисы с обработчиками.
// Auth middleware строится здесь один раз и раздается группам маршрутов.
func NewAppHandlers(container *services.ServiceContainer, tokens *auth.TokenManager) *AppHandlers {
	base := NewBaseHandler(validator.New())
	authMW := middleware.AuthMiddleware(tokens)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, container.AuthService, authMW),
		User:    NewUserHandler(base, container.UserService, authMW),
		Content: NewContentHandler(base, container.ContentService, authMW),
		Comment: NewCommentHandler(base, container.CommentService, authMW),
	}
}
