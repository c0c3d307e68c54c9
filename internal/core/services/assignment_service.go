package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/logger"
)

// AssignmentService handles the assignment list, intake and review workflow.
// The LPS backend owns every transition; this service only gates what it offers.
type AssignmentService struct {
	assignments AssignmentAPI
	customers   CustomerAPI
	users       UserAPI
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(assignments AssignmentAPI, customers CustomerAPI, users UserAPI) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		customers:   customers,
		users:       users,
	}
}

// AssignmentRow is an assignment with resolved names and offered actions
type AssignmentRow struct {
	domain.Assignment
	CustomerName   string          `json:"customer_name"`
	AgentName      string          `json:"agent_name"`
	Badge          domain.Badge    `json:"badge"`
	Actions        []domain.Action `json:"actions"`
	CreatedAtLabel string          `json:"created_at_label"`
}

// List returns every assignment with customer and agent names resolved.
// Failing name lookups degrade to warnings; the list itself must load.
func (s *AssignmentService) List(ctx context.Context, sess *domain.Session) (*ListView[AssignmentRow], error) {
	res, err := s.assignments.ListAssignments(ctx, sess)
	if err != nil {
		return nil, err
	}

	rows, warnings, err := s.decorate(ctx, sess, res.Items)
	if err != nil {
		return nil, err
	}
	return &ListView[AssignmentRow]{
		Items:    rows,
		Warnings: append(appendWarning(nil, res.Warning), warnings...),
	}, nil
}

// Get returns one assignment with names resolved
func (s *AssignmentService) Get(ctx context.Context, sess *domain.Session, id domain.ID) (*ListView[AssignmentRow], error) {
	a, err := s.assignments.GetAssignment(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	rows, warnings, err := s.decorate(ctx, sess, []domain.Assignment{*a})
	if err != nil {
		return nil, err
	}
	return &ListView[AssignmentRow]{Items: rows, Warnings: warnings}, nil
}

// Create posts a new intake. Missing required fields are refused before
// anything is sent.
func (s *AssignmentService) Create(ctx context.Context, sess *domain.Session, input domain.CreateAssignmentInput) (*domain.Assignment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.assignments.CreateAssignment(ctx, sess, input)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"assignment": a.ID.String(),
		"by":         sess.User.Email,
	}).Info("✅ Assignment created")
	return a, nil
}

// Review approves or rejects a submitted assignment, then re-fetches the
// full list so the caller sees the backend's state rather than a local patch.
// Both review and delete are gated locally on a freshly fetched status
// before anything is sent; the backend still has the final word.
// Once the review is accepted, a failed re-fetch is only a warning.
func (s *AssignmentService) Review(ctx context.Context, sess *domain.Session, id domain.ID, input domain.ReviewInput) (*ListView[AssignmentRow], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.assignments.GetAssignment(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanReview(a.Status) {
		return nil, fmt.Errorf("%w: assignment %s is %s, only submitted assignments can be reviewed",
			domain.ErrInvalidState, id, a.Status)
	}

	if err := s.assignments.ReviewAssignment(ctx, sess, id, input); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"assignment": id.String(),
		"action":     string(input.Action),
		"by":         sess.User.Email,
	}).Info("✅ Assignment reviewed")

	view, err := s.List(ctx, sess)
	if err != nil {
		w, err := degrade("assignments", err)
		if err != nil {
			return nil, err
		}
		return &ListView[AssignmentRow]{Items: []AssignmentRow{}, Warnings: []string{w}}, nil
	}
	return view, nil
}

// Delete removes an assignment. Only a pending assignment is sent for deletion.
func (s *AssignmentService) Delete(ctx context.Context, sess *domain.Session, id domain.ID) error {
	a, err := s.assignments.GetAssignment(ctx, sess, id)
	if err != nil {
		return err
	}
	if !domain.CanDelete(a.Status) {
		return fmt.Errorf("%w: assignment %s is %s, only pending assignments can be deleted",
			domain.ErrInvalidState, id, a.Status)
	}

	if err := s.assignments.DeleteAssignment(ctx, sess, id); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"assignment": id.String(),
		"by":         sess.User.Email,
	}).Info("✅ Assignment deleted")
	return nil
}

func (s *AssignmentService) decorate(ctx context.Context, sess *domain.Session, items []domain.Assignment) ([]AssignmentRow, []string, error) {
	var warnings []string

	customerIdx := domain.NewNameIndex("Customer")
	if res, err := s.customers.ListCustomers(ctx, sess); err != nil {
		w, err := degrade("customers", err)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, w)
	} else {
		customerIdx = domain.CustomerIndex(res.Items)
		warnings = appendWarning(warnings, res.Warning)
	}

	agentIdx := domain.NewNameIndex("Agent")
	if res, err := s.users.ListAgents(ctx, sess); err != nil {
		w, err := degrade("agents", err)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, w)
	} else {
		agentIdx = domain.UserIndex("Agent", res.Items)
		warnings = appendWarning(warnings, res.Warning)
	}

	rows := make([]AssignmentRow, 0, len(items))
	for _, a := range items {
		rows = append(rows, AssignmentRow{
			Assignment:     a,
			CustomerName:   customerIdx.Resolve(a.CustomerID),
			AgentName:      agentIdx.Resolve(a.AgentID),
			Badge:          domain.StatusBadge(a.Status),
			Actions:        domain.AllowedActions(a.Status),
			CreatedAtLabel: domain.FormatDate(a.CreatedAt),
		})
	}
	return rows, warnings, nil
}
