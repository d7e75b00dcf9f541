package services

import (
	"time"

	"inspirahub/internal/auth"
	"inspirahub/internal/repositories"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"

	"gorm.io/datatypes"
)

type UserService interface {
	GetAll(limit, offset int) (*dto.UserListResponse, error)
	GetByID(id int64) (*dto.UserResponse, error)
	Update(id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(id int64) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetAll возвращает страницу пользователей (только для админа)
func (s *UserServiceImpl) GetAll(limit, offset int) (*dto.UserListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{Users: responses, Total: total}, nil
}

func (s *UserServiceImpl) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// Update обновляет профиль. Проверка прав (владелец или админ)
// выполняется на уровне обработчика.
func (s *UserServiceImpl) Update(id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != "" && req.Email != user.Email {
		if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing.ID != user.ID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = req.Email
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.DateBirth != "" {
		t, err := time.Parse("2006-01-02", req.DateBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("date_birth must be in YYYY-MM-DD format")
		}
		user.DateBirth = datatypes.Date(t)
	}
	if req.Password != "" {
		if err := auth.ValidatePassword(req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashedPassword, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

// Delete удаляет аккаунт вместе с контентом и комментариями
func (s *UserServiceImpl) Delete(id int64) error {
	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
