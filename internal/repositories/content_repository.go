package repositories

import (
	"errors"

	"inspirahub/internal/models"

	"gorm.io/gorm"
)

var ErrContentNotFound = errors.New("content not found")

type ContentRepository interface {
	FindByID(id int64) (*models.Content, error)
	FindAll(limit, offset int) ([]models.Content, error)
	FindByUserID(userID int64) ([]models.Content, error)
	Create(content *models.Content) error
	Update(content *models.Content) error
	Delete(id int64) error
}

type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) FindByID(id int64) (*models.Content, error) {
	var content models.Content
	err := r.db.First(&content, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepositoryImpl) FindAll(limit, offset int) ([]models.Content, error) {
	var contents []models.Content
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&contents).Error
	return contents, err
}

func (r *ContentRepositoryImpl) FindByUserID(userID int64) ([]models.Content, error) {
	var contents []models.Content
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&contents).Error
	return contents, err
}

func (r *ContentRepositoryImpl) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

func (r *ContentRepositoryImpl) Update(content *models.Content) error {
	return r.db.Save(content).Error
}

func (r *ContentRepositoryImpl) Delete(id int64) error {
	result := r.db.Delete(&models.Content{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}
