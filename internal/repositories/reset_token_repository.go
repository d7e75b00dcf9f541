package repositories

import (
	"errors"
	"time"

	"inspirahub/internal/models"

	"gorm.io/gorm"
)

var ErrResetTokenNotFound = errors.New("reset token not found")

type ResetTokenRepository interface {
	Create(token *models.PasswordResetToken) error
	// FindByEmailAndCode ищет строку с точным совпадением пары {email, code}
	FindByEmailAndCode(email, code string) (*models.PasswordResetToken, error)
	// Delete удаляет строку; отсутствие строки не считается ошибкой
	Delete(id int64) error
	// DeleteOlderThan удаляет все строки старше cutoff и возвращает их число
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type ResetTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &ResetTokenRepositoryImpl{db: db}
}

func (r *ResetTokenRepositoryImpl) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *ResetTokenRepositoryImpl) FindByEmailAndCode(email, code string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := r.db.First(&token, "LOWER(email) = LOWER(?) AND code = ?", email, code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// Delete идемпотентен: строку мог успеть убрать фоновый sweep
func (r *ResetTokenRepositoryImpl) Delete(id int64) error {
	return r.db.Delete(&models.PasswordResetToken{}, "id = ?", id).Error
}

func (r *ResetTokenRepositoryImpl) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Delete(&models.PasswordResetToken{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
