package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials      ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized            ErrorCode = "UNAUTHORIZED"
	CodeForbidden               ErrorCode = "FORBIDDEN"
	CodeInvalidToken            ErrorCode = "INVALID_TOKEN"
	CodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeContentNotFound   ErrorCode = "CONTENT_NOT_FOUND"
	CodeCommentNotFound   ErrorCode = "COMMENT_NOT_FOUND"
	CodeResetCodeNotFound ErrorCode = "RESET_CODE_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists  ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodePasswordsDoNotMatch ErrorCode = "PASSWORDS_DO_NOT_MATCH"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
