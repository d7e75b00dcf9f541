package services

// ServiceContainer собирает все сервисы для передачи в хэндлеры
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ContentService ContentService
	CommentService CommentService
}
