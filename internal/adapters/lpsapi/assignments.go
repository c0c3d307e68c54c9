package lpsapi

import (
	"context"
	"net/http"
	"net/url"

	"lps-admin/internal/core/domain"
)

func assignmentPath(id domain.ID) string {
	return "/assignments/" + url.PathEscape(id.String())
}

// ListAssignments returns every assignment
func (c *Client) ListAssignments(ctx context.Context, sess *domain.Session) (ListResult[domain.Assignment], error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/assignments", nil)
	if err != nil {
		return ListResult[domain.Assignment]{}, err
	}
	return DecodeList[domain.Assignment](raw, "assignments"), nil
}

// GetAssignment fetches one assignment
func (c *Client) GetAssignment(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Assignment, error) {
	raw, err := c.do(ctx, sess, http.MethodGet, assignmentPath(id), nil)
	if err != nil {
		return nil, err
	}
	a, err := DecodeOne[domain.Assignment](raw)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAssignment posts a new intake. The input must already be validated.
func (c *Client) CreateAssignment(ctx context.Context, sess *domain.Session, in domain.CreateAssignmentInput) (*domain.Assignment, error) {
	raw, err := c.do(ctx, sess, http.MethodPost, "/assignments", in)
	if err != nil {
		return nil, err
	}
	a, err := DecodeOne[domain.Assignment](raw)
	if err != nil || a.ID.IsZero() {
		a = domain.Assignment{
			CustomerID:          in.CustomerID,
			AgentID:             in.AgentID,
			Status:              domain.StatusPending,
			JenisIdentitas:      in.JenisIdentitas,
			NoIdentitas:         in.NoIdentitas,
			NamaLengkap:         in.NamaLengkap,
			TempatLahir:         in.TempatLahir,
			TanggalLahir:        in.TanggalLahir,
			JenisKelamin:        in.JenisKelamin,
			Alamat:              in.Alamat,
			NoTelepon:           in.NoTelepon,
			TotalSimpanan:       in.TotalSimpanan,
			StatusLayakBayar:    in.StatusLayakBayar,
			NominalLayakBayar:   in.NominalLayakBayar,
			BatasAkhirPengajuan: in.BatasAkhirPengajuan,
			NamaBank:            in.NamaBank,
			NoCIF:               in.NoCIF,
		}
	}
	return &a, nil
}

// ReviewAssignment posts an approve/reject decision
func (c *Client) ReviewAssignment(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ReviewInput) error {
	_, err := c.do(ctx, sess, http.MethodPost, assignmentPath(id)+"/review", in)
	return err
}

// DeleteAssignment removes an assignment
func (c *Client) DeleteAssignment(ctx context.Context, sess *domain.Session, id domain.ID) error {
	_, err := c.do(ctx, sess, http.MethodDelete, assignmentPath(id), nil)
	return err
}
