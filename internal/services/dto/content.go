package dto

import (
	"time"

	"inspirahub/internal/models"
)

type CreateContentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Preview     string `json:"preview"`
	Description string `json:"description"`
	ContentType string `json:"content_type" validate:"required,max=50"`
}

type UpdateContentRequest struct {
	Title       string `json:"title" validate:"omitempty,max=200"`
	Preview     string `json:"preview"`
	Description string `json:"description"`
	ContentType string `json:"content_type" validate:"omitempty,max=50"`
}

type ContentResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Preview     string    `json:"preview"`
	Description string    `json:"description"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewContentResponse(content *models.Content) *ContentResponse {
	return &ContentResponse{
		ID:          content.ID,
		UserID:      content.UserID,
		Title:       content.Title,
		Preview:     content.Preview,
		Description: content.Description,
		ContentType: content.ContentType,
		CreatedAt:   content.CreatedAt,
	}
}
