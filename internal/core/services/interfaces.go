package services

import (
	"context"

	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/core/domain"
)

// The interfaces below are the slices of the LPS API each service uses.
// *lpsapi.Client satisfies all of them.

// AuthAPI is the upstream authentication surface
type AuthAPI interface {
	Login(ctx context.Context, in domain.LoginInput) (*lpsapi.LoginResult, error)
}

// UserAPI is the upstream user surface
type UserAPI interface {
	ListUsers(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error)
	ListAgents(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error)
	ListUsersOrAgents(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error)
	GetUser(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.User, error)
	Register(ctx context.Context, sess *domain.Session, in domain.RegisterUserInput) (*domain.User, error)
}

// CustomerAPI is the upstream customer surface
type CustomerAPI interface {
	ListCustomers(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Customer], error)
	GetCustomer(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, sess *domain.Session, in domain.CreateCustomerInput) (*domain.Customer, error)
}

// AssignmentAPI is the upstream assignment surface
type AssignmentAPI interface {
	ListAssignments(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Assignment], error)
	GetAssignment(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Assignment, error)
	CreateAssignment(ctx context.Context, sess *domain.Session, in domain.CreateAssignmentInput) (*domain.Assignment, error)
	ReviewAssignment(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ReviewInput) error
	DeleteAssignment(ctx context.Context, sess *domain.Session, id domain.ID) error
}

// ApproverAPI is the upstream approver task surface
type ApproverAPI interface {
	ListApproverTasks(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.ApproverTask], error)
	GetApproverTask(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.ApproverTask, error)
	CreateApproverTask(ctx context.Context, sess *domain.Session, in domain.ApproverTaskInput) (*domain.ApproverTask, error)
	UpdateApproverTask(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ApproverTaskInput) (*domain.ApproverTask, error)
	DeleteApproverTask(ctx context.Context, sess *domain.Session, id domain.ID) error
}

// Compile-time checks
var (
	_ AuthAPI       = (*lpsapi.Client)(nil)
	_ UserAPI       = (*lpsapi.Client)(nil)
	_ CustomerAPI   = (*lpsapi.Client)(nil)
	_ AssignmentAPI = (*lpsapi.Client)(nil)
	_ ApproverAPI   = (*lpsapi.Client)(nil)
)

// ListView is a list plus any warnings from degraded lookups
type ListView[T any] struct {
	Items    []T      `json:"items"`
	Warnings []string `json:"warnings,omitempty"`
}

func appendWarning(warnings []string, w string) []string {
	if w == "" {
		return warnings
	}
	return append(warnings, w)
}
