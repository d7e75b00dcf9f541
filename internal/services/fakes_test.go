package services

import (
	"strings"
	"sync"
	"time"

	"inspirahub/internal/models"
	"inspirahub/internal/repositories"
)

// Рукописные in-memory фейки репозиториев. Достаточно для проверки
// логики сервисов без поднятия Postgres.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) FindByID(id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			all = append(all, *user)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeResetRepo struct {
	mu     sync.Mutex
	nextID int64
	tokens map[int64]*models.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[int64]*models.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(token *models.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	token.ID = r.nextID
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	copied := *token
	r.tokens[token.ID] = &copied
	return nil
}

func (r *fakeResetRepo) FindByEmailAndCode(email, code string) (*models.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, token := range r.tokens {
		if strings.EqualFold(token.Email, email) && token.Code == code {
			copied := *token
			return &copied, nil
		}
	}
	return nil, repositories.ErrResetTokenNotFound
}

func (r *fakeResetRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, id)
	return nil
}

func (r *fakeResetRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, token := range r.tokens {
		if token.CreatedAt.Before(cutoff) {
			delete(r.tokens, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeResetRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

// backdate сдвигает created_at строки в прошлое, имитируя старый код
func (r *fakeResetRepo) backdate(id int64, age time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token, ok := r.tokens[id]; ok {
		token.CreatedAt = time.Now().Add(-age)
	}
}

func (r *fakeResetRepo) lastCode() (int64, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[r.nextID]
	if !ok {
		return 0, ""
	}
	return token.ID, token.Code
}

type fakeContentRepo struct {
	mu       sync.Mutex
	nextID   int64
	contents map[int64]*models.Content
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{contents: make(map[int64]*models.Content)}
}

func (r *fakeContentRepo) FindByID(id int64) (*models.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	content, ok := r.contents[id]
	if !ok {
		return nil, repositories.ErrContentNotFound
	}
	copied := *content
	return &copied, nil
}

func (r *fakeContentRepo) FindAll(limit, offset int) ([]models.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.Content, 0, len(r.contents))
	for id := r.nextID; id >= 1; id-- {
		if content, ok := r.contents[id]; ok {
			all = append(all, *content)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeContentRepo) FindByUserID(userID int64) ([]models.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Content
	for id := int64(1); id <= r.nextID; id++ {
		if content, ok := r.contents[id]; ok && content.UserID == userID {
			result = append(result, *content)
		}
	}
	return result, nil
}

func (r *fakeContentRepo) Create(content *models.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	content.ID = r.nextID
	content.CreatedAt = time.Now()
	copied := *content
	r.contents[content.ID] = &copied
	return nil
}

func (r *fakeContentRepo) Update(content *models.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contents[content.ID]; !ok {
		return repositories.ErrContentNotFound
	}
	copied := *content
	r.contents[content.ID] = &copied
	return nil
}

func (r *fakeContentRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contents[id]; !ok {
		return repositories.ErrContentNotFound
	}
	delete(r.contents, id)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   int64
	comments map[int64]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*models.Comment)}
}

func (r *fakeCommentRepo) FindByID(id int64) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) FindAll(limit, offset int) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.Comment, 0, len(r.comments))
	for id := int64(1); id <= r.nextID; id++ {
		if comment, ok := r.comments[id]; ok {
			all = append(all, *comment)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeCommentRepo) FindByContentID(contentID int64) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Comment
	for id := int64(1); id <= r.nextID; id++ {
		if comment, ok := r.comments[id]; ok && comment.ContentID == contentID {
			result = append(result, *comment)
		}
	}
	return result, nil
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) Update(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[comment.ID]; !ok {
		return repositories.ErrCommentNotFound
	}
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repositories.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// fakeEmailProvider записывает отправленные письма.
// failResetCode имитирует падение SMTP на коде сброса.
type fakeEmailProvider struct {
	mu            sync.Mutex
	resetCodes    []string
	welcomes      []string
	failResetCode bool
}

func (p *fakeEmailProvider) SendResetCode(to, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failResetCode {
		return errSMTPDown
	}
	p.resetCodes = append(p.resetCodes, code)
	return nil
}

func (p *fakeEmailProvider) SendWelcome(to, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.welcomes = append(p.welcomes, to)
	return nil
}

func (p *fakeEmailProvider) sentResetCodes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.resetCodes...)
}
