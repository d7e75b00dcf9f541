package repositories

import (
	"errors"

	"inspirahub/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	FindByID(id int64) (*models.Comment, error)
	FindAll(limit, offset int) ([]models.Comment, error)
	FindByContentID(contentID int64) ([]models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id int64) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) FindByID(id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) FindAll(limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) FindByContentID(contentID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("content_id = ?", contentID).Order("created_at").Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepositoryImpl) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepositoryImpl) Delete(id int64) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
