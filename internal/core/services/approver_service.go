package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/attachment"
	"lps-admin/internal/pkg/logger"
)

const noUsersWarning = "no users available to assign"

// ApproverService handles the approver task registry
type ApproverService struct {
	tasks ApproverAPI
	users UserAPI
}

// NewApproverService creates a new approver service
func NewApproverService(tasks ApproverAPI, users UserAPI) *ApproverService {
	return &ApproverService{tasks: tasks, users: users}
}

// ApproverTaskRow is a task with its assignee's name
type ApproverTaskRow struct {
	domain.ApproverTask
	UserName        string `json:"user_name"`
	AttachmentCount int    `json:"attachment_count"`
	CreatedAtLabel  string `json:"created_at_label"`
}

// ApproverTaskDetail is a task with its assignee and attachment previews
type ApproverTaskDetail struct {
	domain.ApproverTask
	User               *domain.User         `json:"user,omitempty"`
	UserName           string               `json:"user_name"`
	AttachmentPreviews []attachment.Preview `json:"attachment_previews"`
	CreatedAtLabel     string               `json:"created_at_label"`
	UpdatedAtLabel     string               `json:"updated_at_label"`
}

// List returns every task with assignee names
func (s *ApproverService) List(ctx context.Context, sess *domain.Session) (*ListView[ApproverTaskRow], error) {
	res, err := s.tasks.ListApproverTasks(ctx, sess)
	if err != nil {
		return nil, err
	}
	warnings := appendWarning(nil, res.Warning)

	users, err := s.Users(ctx, sess)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, users.Warnings...)
	idx := domain.UserIndex("User", users.Items)

	rows := make([]ApproverTaskRow, 0, len(res.Items))
	for _, t := range res.Items {
		rows = append(rows, ApproverTaskRow{
			ApproverTask:    t,
			UserName:        idx.Resolve(t.UserID),
			AttachmentCount: len(t.Attachments),
			CreatedAtLabel:  domain.FormatDate(t.CreatedAt),
		})
	}
	return &ListView[ApproverTaskRow]{Items: rows, Warnings: warnings}, nil
}

// Users returns the users a task can be assigned to. /users is tried first
// with /users/agents as fallback; an empty result carries a warning.
func (s *ApproverService) Users(ctx context.Context, sess *domain.Session) (*ListView[domain.User], error) {
	var warnings []string

	res, err := s.users.ListUsersOrAgents(ctx, sess)
	if err != nil {
		w, err := degrade("users", err)
		if err != nil {
			return nil, err
		}
		return &ListView[domain.User]{Items: []domain.User{}, Warnings: []string{w, noUsersWarning}}, nil
	}

	warnings = appendWarning(warnings, res.Warning)
	if len(res.Items) == 0 {
		warnings = append(warnings, noUsersWarning)
	}
	return &ListView[domain.User]{Items: res.Items, Warnings: warnings}, nil
}

// Get returns a task with its assignee and attachment previews.
// A failed assignee lookup leaves the user empty.
func (s *ApproverService) Get(ctx context.Context, sess *domain.Session, id domain.ID) (*ApproverTaskDetail, error) {
	t, err := s.tasks.GetApproverTask(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	detail := &ApproverTaskDetail{
		ApproverTask:       *t,
		UserName:           domain.NewNameIndex("User").Resolve(t.UserID),
		AttachmentPreviews: attachment.DescribeAll(t.Attachments),
		CreatedAtLabel:     domain.FormatDate(t.CreatedAt),
		UpdatedAtLabel:     domain.FormatDate(t.UpdatedAt),
	}

	if !t.UserID.IsZero() {
		u, err := s.users.GetUser(ctx, sess, t.UserID)
		switch {
		case errors.Is(err, lpsapi.ErrUnauthorized):
			return nil, err
		case err != nil:
			logger.Warnf("⚠️ Assignee %s of task %s not resolved: %v", t.UserID, t.ID, err)
		default:
			detail.User = u
			detail.UserName = u.DisplayName()
		}
	}
	return detail, nil
}

// Create adds a task after dropping blank attachments and checking the form
func (s *ApproverService) Create(ctx context.Context, sess *domain.Session, input domain.ApproverTaskInput) (*domain.ApproverTask, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	t, err := s.tasks.CreateApproverTask(ctx, sess, input)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{"task": t.ID.String(), "by": sess.User.Email}).Info("✅ Approver task created")
	return t, nil
}

// Update replaces a task's fields
func (s *ApproverService) Update(ctx context.Context, sess *domain.Session, id domain.ID, input domain.ApproverTaskInput) (*domain.ApproverTask, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	t, err := s.tasks.UpdateApproverTask(ctx, sess, id, input)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{"task": id.String(), "by": sess.User.Email}).Info("✅ Approver task updated")
	return t, nil
}

// Delete removes a task
func (s *ApproverService) Delete(ctx context.Context, sess *domain.Session, id domain.ID) error {
	if err := s.tasks.DeleteApproverTask(ctx, sess, id); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"task": id.String(), "by": sess.User.Email}).Info("✅ Approver task deleted")
	return nil
}
