package services

import (
	"context"
	"sync"
	"time"

	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/adapters/persistence/models"
	"lps-admin/internal/core/domain"
)

// fakeAPI implements every upstream interface; unset funcs return empty results
type fakeAPI struct {
	loginFn             func(ctx context.Context, in domain.LoginInput) (*lpsapi.LoginResult, error)
	listUsersFn         func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error)
	listAgentsFn        func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error)
	listUsersOrAgentsFn func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error)
	getUserFn           func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.User, error)
	registerFn          func(ctx context.Context, sess *domain.Session, in domain.RegisterUserInput) (*domain.User, error)
	listCustomersFn     func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Customer], error)
	getCustomerFn       func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Customer, error)
	createCustomerFn    func(ctx context.Context, sess *domain.Session, in domain.CreateCustomerInput) (*domain.Customer, error)
	listAssignmentsFn   func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Assignment], error)
	getAssignmentFn     func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Assignment, error)
	createAssignmentFn  func(ctx context.Context, sess *domain.Session, in domain.CreateAssignmentInput) (*domain.Assignment, error)
	reviewAssignmentFn  func(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ReviewInput) error
	deleteAssignmentFn  func(ctx context.Context, sess *domain.Session, id domain.ID) error
	listTasksFn         func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.ApproverTask], error)
	getTaskFn           func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.ApproverTask, error)
	createTaskFn        func(ctx context.Context, sess *domain.Session, in domain.ApproverTaskInput) (*domain.ApproverTask, error)
	updateTaskFn        func(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ApproverTaskInput) (*domain.ApproverTask, error)
	deleteTaskFn        func(ctx context.Context, sess *domain.Session, id domain.ID) error

	mu    sync.Mutex
	calls []string
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(ctx context.Context, in domain.LoginInput) (*lpsapi.LoginResult, error) {
	f.record("Login")
	return f.loginFn(ctx, in)
}

func (f *fakeAPI) ListUsers(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error) {
	f.record("ListUsers")
	if f.listUsersFn == nil {
		return lpsapi.ListResult[domain.User]{Items: []domain.User{}}, nil
	}
	return f.listUsersFn(ctx, sess)
}

func (f *fakeAPI) ListAgents(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error) {
	f.record("ListAgents")
	if f.listAgentsFn == nil {
		return lpsapi.ListResult[domain.User]{Items: []domain.User{}}, nil
	}
	return f.listAgentsFn(ctx, sess)
}

func (f *fakeAPI) ListUsersOrAgents(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error) {
	f.record("ListUsersOrAgents")
	if f.listUsersOrAgentsFn == nil {
		return lpsapi.ListResult[domain.User]{Items: []domain.User{}}, nil
	}
	return f.listUsersOrAgentsFn(ctx, sess)
}

func (f *fakeAPI) GetUser(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.User, error) {
	f.record("GetUser")
	return f.getUserFn(ctx, sess, id)
}

func (f *fakeAPI) Register(ctx context.Context, sess *domain.Session, in domain.RegisterUserInput) (*domain.User, error) {
	f.record("Register")
	return f.registerFn(ctx, sess, in)
}

func (f *fakeAPI) ListCustomers(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Customer], error) {
	f.record("ListCustomers")
	if f.listCustomersFn == nil {
		return lpsapi.ListResult[domain.Customer]{Items: []domain.Customer{}}, nil
	}
	return f.listCustomersFn(ctx, sess)
}

func (f *fakeAPI) GetCustomer(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Customer, error) {
	f.record("GetCustomer")
	return f.getCustomerFn(ctx, sess, id)
}

func (f *fakeAPI) CreateCustomer(ctx context.Context, sess *domain.Session, in domain.CreateCustomerInput) (*domain.Customer, error) {
	f.record("CreateCustomer")
	return f.createCustomerFn(ctx, sess, in)
}

func (f *fakeAPI) ListAssignments(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.Assignment], error) {
	f.record("ListAssignments")
	if f.listAssignmentsFn == nil {
		return lpsapi.ListResult[domain.Assignment]{Items: []domain.Assignment{}}, nil
	}
	return f.listAssignmentsFn(ctx, sess)
}

func (f *fakeAPI) GetAssignment(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Assignment, error) {
	f.record("GetAssignment")
	return f.getAssignmentFn(ctx, sess, id)
}

func (f *fakeAPI) CreateAssignment(ctx context.Context, sess *domain.Session, in domain.CreateAssignmentInput) (*domain.Assignment, error) {
	f.record("CreateAssignment")
	return f.createAssignmentFn(ctx, sess, in)
}

func (f *fakeAPI) ReviewAssignment(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ReviewInput) error {
	f.record("ReviewAssignment")
	return f.reviewAssignmentFn(ctx, sess, id, in)
}

func (f *fakeAPI) DeleteAssignment(ctx context.Context, sess *domain.Session, id domain.ID) error {
	f.record("DeleteAssignment")
	return f.deleteAssignmentFn(ctx, sess, id)
}

func (f *fakeAPI) ListApproverTasks(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.ApproverTask], error) {
	f.record("ListApproverTasks")
	if f.listTasksFn == nil {
		return lpsapi.ListResult[domain.ApproverTask]{Items: []domain.ApproverTask{}}, nil
	}
	return f.listTasksFn(ctx, sess)
}

func (f *fakeAPI) GetApproverTask(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.ApproverTask, error) {
	f.record("GetApproverTask")
	return f.getTaskFn(ctx, sess, id)
}

func (f *fakeAPI) CreateApproverTask(ctx context.Context, sess *domain.Session, in domain.ApproverTaskInput) (*domain.ApproverTask, error) {
	f.record("CreateApproverTask")
	return f.createTaskFn(ctx, sess, in)
}

func (f *fakeAPI) UpdateApproverTask(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ApproverTaskInput) (*domain.ApproverTask, error) {
	f.record("UpdateApproverTask")
	return f.updateTaskFn(ctx, sess, id, in)
}

func (f *fakeAPI) DeleteApproverTask(ctx context.Context, sess *domain.Session, id domain.ID) error {
	f.record("DeleteApproverTask")
	return f.deleteTaskFn(ctx, sess, id)
}

// memSessionRepo is an in-memory SessionRepository
type memSessionRepo struct {
	mu        sync.Mutex
	rows      map[string]*models.Session
	createErr error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{rows: map[string]*models.Session{}}
}

func (r *memSessionRepo) Create(ctx context.Context, s *models.Session) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok || s.RevokedAt != nil {
		return nil, domain.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.rows[id]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r *memSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.rows {
		if s.IsRevoked() || s.IsExpired(time.Now()) {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *memSessionRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func testSession() *domain.Session {
	return &domain.Session{
		ID:        "sid",
		Token:     "T",
		User:      domain.SessionUser{ID: "1", Email: "admin@lps.id", Role: domain.RoleAdmin},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
