package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// ClaimsContextKey - ключ, по которому middleware хранит claims токена
const ClaimsContextKey = contextKey("claims")
