package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/core/domain"
)

func TestDashboardService_Get(t *testing.T) {
	api := &fakeAPI{
		listUsersFn: func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error) {
			return lpsapi.ListResult[domain.User]{Items: []domain.User{
				{ID: "1", Role: domain.RoleAdmin},
				{ID: "2", Role: domain.RoleAgent},
				{ID: "3", Role: domain.RoleAgent},
			}}, nil
		},
		listAssignmentsFn: assignmentList(
			domain.Assignment{ID: "1", Status: domain.StatusSubmitted},
			domain.Assignment{ID: "2", Status: domain.StatusSubmitted},
			domain.Assignment{ID: "3", Status: domain.StatusApproved},
		),
		listCustomersFn: func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Customer], error) {
			return lpsapi.ListResult[domain.Customer]{}, &lpsapi.APIError{StatusCode: 503}
		},
	}

	data, err := NewDashboardService(api).Get(context.Background(), testSession())
	require.NoError(t, err)
	assert.Equal(t, 3, data.TotalUsers)
	assert.Equal(t, 2, data.UsersByRole[domain.RoleAgent])
	assert.Equal(t, 3, data.TotalAssignments)
	assert.Equal(t, 2, data.AwaitingReview)
	assert.Equal(t, 1, data.AssignmentsByStatus[domain.StatusApproved])
	assert.Zero(t, data.TotalCustomers)
	assert.Equal(t, []string{"customers unavailable: status 503"}, data.Warnings)
}

func TestDashboardService_Get_Unauthorized(t *testing.T) {
	api := &fakeAPI{
		listTasksFn: func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.ApproverTask], error) {
			return lpsapi.ListResult[domain.ApproverTask]{}, lpsapi.ErrUnauthorized
		},
	}

	_, err := NewDashboardService(api).Get(context.Background(), testSession())
	assert.ErrorIs(t, err, lpsapi.ErrUnauthorized)
}
