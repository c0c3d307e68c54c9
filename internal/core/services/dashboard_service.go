package services

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"lps-admin/internal/core/domain"
)

// DashboardAPI is everything the home screen counts
type DashboardAPI interface {
	UserAPI
	CustomerAPI
	AssignmentAPI
	ApproverAPI
}

// DashboardService handles dashboard operations
type DashboardService struct {
	api DashboardAPI
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(api DashboardAPI) *DashboardService {
	return &DashboardService{api: api}
}

// DashboardData represents the home screen counts
type DashboardData struct {
	// User Statistics
	TotalUsers  int                 `json:"total_users"`
	UsersByRole map[domain.Role]int `json:"users_by_role"`

	// Customer Statistics
	TotalCustomers int `json:"total_customers"`

	// Assignment Statistics
	TotalAssignments    int                             `json:"total_assignments"`
	AssignmentsByStatus map[domain.AssignmentStatus]int `json:"assignments_by_status"`
	AwaitingReview      int                             `json:"awaiting_review"`

	// Approver Statistics
	TotalApproverTasks int `json:"total_approver_tasks"`

	Warnings []string `json:"warnings,omitempty"`
}

// Get fetches every section concurrently. A failed section becomes a
// warning; only an authentication failure fails the whole dashboard.
func (s *DashboardService) Get(ctx context.Context, sess *domain.Session) (*DashboardData, error) {
	data := &DashboardData{
		UsersByRole:         map[domain.Role]int{},
		AssignmentsByStatus: map[domain.AssignmentStatus]int{},
	}

	var mu sync.Mutex
	warn := func(section string, err error, shapeWarning string) error {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			w, err := degrade(section, err)
			if err != nil {
				return err
			}
			data.Warnings = append(data.Warnings, w)
			return nil
		}
		data.Warnings = appendWarning(data.Warnings, shapeWarning)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := s.api.ListUsers(gctx, sess)
		if err == nil {
			mu.Lock()
			data.TotalUsers = len(res.Items)
			for _, u := range res.Items {
				data.UsersByRole[u.Role]++
			}
			mu.Unlock()
		}
		return warn("users", err, res.Warning)
	})

	g.Go(func() error {
		res, err := s.api.ListCustomers(gctx, sess)
		if err == nil {
			mu.Lock()
			data.TotalCustomers = len(res.Items)
			mu.Unlock()
		}
		return warn("customers", err, res.Warning)
	})

	g.Go(func() error {
		res, err := s.api.ListAssignments(gctx, sess)
		if err == nil {
			mu.Lock()
			data.TotalAssignments = len(res.Items)
			for _, a := range res.Items {
				data.AssignmentsByStatus[a.Status]++
				if domain.CanReview(a.Status) {
					data.AwaitingReview++
				}
			}
			mu.Unlock()
		}
		return warn("assignments", err, res.Warning)
	})

	g.Go(func() error {
		res, err := s.api.ListApproverTasks(gctx, sess)
		if err == nil {
			mu.Lock()
			data.TotalApproverTasks = len(res.Items)
			mu.Unlock()
		}
		return warn("approver tasks", err, res.Warning)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(data.Warnings)
	return data, nil
}
