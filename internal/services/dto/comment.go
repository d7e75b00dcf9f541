package dto

import (
	"time"

	"inspirahub/internal/models"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ContentID int64     `json:"content_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		ContentID: comment.ContentID,
		UserName:  comment.UserName,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
