package lpsapi

import (
	"context"
	"net/http"
	"net/url"

	"lps-admin/internal/core/domain"
)

func approverPath(id domain.ID) string {
	return "/approver/" + url.PathEscape(id.String())
}

// ListApproverTasks returns every approver task
func (c *Client) ListApproverTasks(ctx context.Context, sess *domain.Session) (ListResult[domain.ApproverTask], error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/approver", nil)
	if err != nil {
		return ListResult[domain.ApproverTask]{}, err
	}
	return DecodeList[domain.ApproverTask](raw, "approver", "tasks"), nil
}

// GetApproverTask fetches one task
func (c *Client) GetApproverTask(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.ApproverTask, error) {
	raw, err := c.do(ctx, sess, http.MethodGet, approverPath(id), nil)
	if err != nil {
		return nil, err
	}
	task, err := DecodeOne[domain.ApproverTask](raw)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateApproverTask creates a task
func (c *Client) CreateApproverTask(ctx context.Context, sess *domain.Session, in domain.ApproverTaskInput) (*domain.ApproverTask, error) {
	raw, err := c.do(ctx, sess, http.MethodPost, "/approver", in)
	if err != nil {
		return nil, err
	}
	return decodeTask(raw, "", in), nil
}

// UpdateApproverTask replaces a task's fields
func (c *Client) UpdateApproverTask(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ApproverTaskInput) (*domain.ApproverTask, error) {
	raw, err := c.do(ctx, sess, http.MethodPut, approverPath(id), in)
	if err != nil {
		return nil, err
	}
	return decodeTask(raw, id, in), nil
}

// DeleteApproverTask removes a task
func (c *Client) DeleteApproverTask(ctx context.Context, sess *domain.Session, id domain.ID) error {
	_, err := c.do(ctx, sess, http.MethodDelete, approverPath(id), nil)
	return err
}

func decodeTask(raw []byte, id domain.ID, in domain.ApproverTaskInput) *domain.ApproverTask {
	task, err := DecodeOne[domain.ApproverTask](raw)
	if err == nil && !task.ID.IsZero() {
		return &task
	}
	return &domain.ApproverTask{
		ID:          id,
		UserID:      in.UserID,
		Judul:       in.Judul,
		Deskripsi:   in.Deskripsi,
		Attachments: in.Attachments,
	}
}
