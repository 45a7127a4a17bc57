package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Skotchmaster/demo_api/internal/models"
	"github.com/Skotchmaster/demo_api/internal/query"
	"github.com/Skotchmaster/demo_api/internal/repo"
	"github.com/Skotchmaster/demo_api/internal/transport"
	"github.com/Skotchmaster/demo_api/internal/validate"
)

const (
	msgUserNotFound      = "User not found"
	msgUserRequired      = "Name and email are required"
	msgInvalidEmail      = "Invalid email format"
	msgInvalidRole       = `Role must be either "admin" or "user"`
	msgEmptyName         = "Name cannot be empty"
	msgEmailExists       = "User with this email already exists"
	msgEmailInUseByOther = "Email is already in use by another user"
)

type UserService struct {
	Repo repo.Store[models.User]
	Now  func() time.Time

	// mu makes each check-then-mutate sequence atomic.
	mu sync.RWMutex
}

func NewUserService(store repo.Store[models.User]) *UserService {
	return &UserService{Repo: store, Now: time.Now}
}

func (s *UserService) now() time.Time {
	return s.Now().UTC()
}

func (s *UserService) ListUsers(ctx context.Context, f query.UserFilter, p query.Page) ([]models.User, query.Pagination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.Repo.All(ctx)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	items, meta := query.Paginate(f.Apply(users), p)
	return items, meta, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.find(ctx, id)
}

func (s *UserService) find(ctx context.Context, id int) (*models.User, error) {
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFoundError(msgUserNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, body transport.Body) (*models.User, error) {
	req, err := decodeUser(body)
	if err != nil {
		return nil, err
	}
	if !validate.Required(req.Name) || !validate.Required(req.Email) {
		return nil, validationError(msgUserRequired)
	}

	email := strings.ToLower(strings.TrimSpace(*req.Email))
	if !validate.Email(email) {
		return nil, validationError(msgInvalidEmail)
	}

	role := models.RoleUser
	if req.Role != nil {
		var ok bool
		if role, ok = validate.Role(strings.TrimSpace(*req.Role)); !ok {
			return nil, validationError(msgInvalidRole)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taken, err := s.emailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictError(msgEmailExists)
	}

	id, err := s.Repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:        id,
		Name:      strings.TrimSpace(*req.Name),
		Email:     email,
		Role:      role,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser merges the provided fields into the stored user.
func (s *UserService) UpdateUser(ctx context.Context, id int, body transport.Body) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req, err := decodeUser(body)
	if err != nil {
		return nil, err
	}

	var email, role string
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
		if !validate.Email(email) {
			return nil, validationError(msgInvalidEmail)
		}
	}
	if req.Role != nil {
		var ok bool
		if role, ok = validate.Role(strings.TrimSpace(*req.Role)); !ok {
			return nil, validationError(msgInvalidRole)
		}
	}
	if req.Name != nil && !validate.Required(req.Name) {
		return nil, validationError(msgEmptyName)
	}

	if req.Email != nil {
		taken, err := s.emailTaken(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflictError(msgEmailInUseByOther)
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = role
	}
	updatedAt := s.now()
	user.UpdatedAt = &updatedAt

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.Repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFoundError(msgUserNotFound)
		}
		return nil, err
	}
	return user, nil
}

// emailTaken expects email lowercased; exceptID 0 excludes nobody.
func (s *UserService) emailTaken(ctx context.Context, email string, exceptID int) (bool, error) {
	users, err := s.Repo.All(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func decodeUser(body transport.Body) (transport.UserRequest, error) {
	req, err := transport.DecodeUser(body)
	if err != nil {
		return transport.UserRequest{}, asValidation(err)
	}
	return req, nil
}

func asValidation(err error) error {
	var fe *transport.FieldError
	if errors.As(err, &fe) {
		return validationError(fe.Message)
	}
	return err
}
