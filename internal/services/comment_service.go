package services

import (
	"inspirahub/internal/models"
	"inspirahub/internal/repositories"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"
)

type CommentService interface {
	GetAll(limit, offset int) ([]dto.CommentResponse, error)
	GetByContent(contentID int64) ([]dto.CommentResponse, error)
	GetByID(id int64) (*dto.CommentResponse, error)
	OwnerOf(id int64) (int64, error)
	Create(userID int64, username string, contentID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Update(id int64, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(id int64) error
}

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	contentRepo repositories.ContentRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, contentRepo repositories.ContentRepository) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
	}
}

func (s *CommentServiceImpl) GetAll(limit, offset int) ([]dto.CommentResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	comments, err := s.commentRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toCommentResponses(comments), nil
}

func (s *CommentServiceImpl) GetByContent(contentID int64) ([]dto.CommentResponse, error) {
	if _, err := s.contentRepo.FindByID(contentID); err != nil {
		if apperrors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.commentRepo.FindByContentID(contentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toCommentResponses(comments), nil
}

func (s *CommentServiceImpl) GetByID(id int64) (*dto.CommentResponse, error) {
	comment, err := s.findComment(id)
	if err != nil {
		return nil, err
	}
	return dto.NewCommentResponse(comment), nil
}

func (s *CommentServiceImpl) OwnerOf(id int64) (int64, error) {
	comment, err := s.findComment(id)
	if err != nil {
		return 0, err
	}
	return comment.UserID, nil
}

// Create создает комментарий к существующему контенту.
// Имя автора снимается в момент создания (snapshot, как в остальной схеме).
func (s *CommentServiceImpl) Create(userID int64, username string, contentID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.contentRepo.FindByID(contentID); err != nil {
		if apperrors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		UserID:    userID,
		ContentID: contentID,
		UserName:  username,
		Text:      req.Text,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewCommentResponse(comment), nil
}

func (s *CommentServiceImpl) Update(id int64, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.findComment(id)
	if err != nil {
		return nil, err
	}

	comment.Text = req.Text

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewCommentResponse(comment), nil
}

func (s *CommentServiceImpl) Delete(id int64) error {
	if err := s.commentRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CommentServiceImpl) findComment(id int64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return comment, nil
}

func toCommentResponses(comments []models.Comment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.NewCommentResponse(&comments[i]))
	}
	return responses
}
