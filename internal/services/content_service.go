package services

import (
	"inspirahub/internal/models"
	"inspirahub/internal/repositories"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"
)

type ContentService interface {
	GetAll(limit, offset int) ([]dto.ContentResponse, error)
	GetByID(id int64) (*dto.ContentResponse, error)
	// OwnerOf возвращает id владельца для проверки прав в обработчике
	OwnerOf(id int64) (int64, error)
	Create(userID int64, req *dto.CreateContentRequest) (*dto.ContentResponse, error)
	Update(id int64, req *dto.UpdateContentRequest) (*dto.ContentResponse, error)
	Delete(id int64) error
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &ContentServiceImpl{contentRepo: contentRepo}
}

func (s *ContentServiceImpl) GetAll(limit, offset int) ([]dto.ContentResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	contents, err := s.contentRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, *dto.NewContentResponse(&contents[i]))
	}
	return responses, nil
}

func (s *ContentServiceImpl) GetByID(id int64) (*dto.ContentResponse, error) {
	content, err := s.findContent(id)
	if err != nil {
		return nil, err
	}
	return dto.NewContentResponse(content), nil
}

func (s *ContentServiceImpl) OwnerOf(id int64) (int64, error) {
	content, err := s.findContent(id)
	if err != nil {
		return 0, err
	}
	return content.UserID, nil
}

// Create создает контент; владелец берется из claims, не из тела запроса
func (s *ContentServiceImpl) Create(userID int64, req *dto.CreateContentRequest) (*dto.ContentResponse, error) {
	content := &models.Content{
		UserID:      userID,
		Title:       req.Title,
		Preview:     req.Preview,
		Description: req.Description,
		ContentType: req.ContentType,
	}

	if err := s.contentRepo.Create(content); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewContentResponse(content), nil
}

func (s *ContentServiceImpl) Update(id int64, req *dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	content, err := s.findContent(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		content.Title = req.Title
	}
	if req.Preview != "" {
		content.Preview = req.Preview
	}
	if req.Description != "" {
		content.Description = req.Description
	}
	if req.ContentType != "" {
		content.ContentType = req.ContentType
	}

	if err := s.contentRepo.Update(content); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewContentResponse(content), nil
}

func (s *ContentServiceImpl) Delete(id int64) error {
	if err := s.contentRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrContentNotFound) {
			return apperrors.ErrContentNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContentServiceImpl) findContent(id int64) (*models.Content, error) {
	content, err := s.contentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return content, nil
}
