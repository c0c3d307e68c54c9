package services

import (
	"context"

	"lps-admin/internal/core/domain"
)

// UserService handles backend user operations
type UserService struct {
	api UserAPI
}

// NewUserService creates a new user service
func NewUserService(api UserAPI) *UserService {
	return &UserService{api: api}
}

// UserRow is a user decorated for the users table
type UserRow struct {
	domain.User
	DisplayName    string       `json:"display_name"`
	RoleBadge      domain.Badge `json:"role_badge"`
	CreatedAtLabel string       `json:"created_at_label"`
}

func newUserRow(u domain.User) UserRow {
	return UserRow{
		User:           u,
		DisplayName:    u.DisplayName(),
		RoleBadge:      domain.RoleBadge(u.Role),
		CreatedAtLabel: domain.FormatDate(u.CreatedAt),
	}
}

func userRows(users []domain.User) []UserRow {
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, newUserRow(u))
	}
	return rows
}

// List returns every user
func (s *UserService) List(ctx context.Context, sess *domain.Session) (*ListView[UserRow], error) {
	res, err := s.api.ListUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &ListView[UserRow]{
		Items:    userRows(res.Items),
		Warnings: appendWarning(nil, res.Warning),
	}, nil
}

// ListAgents returns users with the agent role
func (s *UserService) ListAgents(ctx context.Context, sess *domain.Session) (*ListView[UserRow], error) {
	res, err := s.api.ListAgents(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &ListView[UserRow]{
		Items:    userRows(res.Items),
		Warnings: appendWarning(nil, res.Warning),
	}, nil
}

// Get returns one user
func (s *UserService) Get(ctx context.Context, sess *domain.Session, id domain.ID) (*UserRow, error) {
	u, err := s.api.GetUser(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	row := newUserRow(*u)
	return &row, nil
}

// Create registers a backend user. The form is checked before any call.
func (s *UserService) Create(ctx context.Context, sess *domain.Session, input domain.RegisterUserInput) (*UserRow, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	u, err := s.api.Register(ctx, sess, input)
	if err != nil {
		return nil, err
	}
	row := newUserRow(*u)
	return &row, nil
}
