package lpsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lps-admin/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/", Timeout: 2 * time.Second, MaxRetries: 2}), srv
}

func testSession() *domain.Session {
	return &domain.Session{ID: "s-1", Token: "T", ExpiresAt: time.Now().Add(time.Hour)}
}

func TestClient_SendsBearerAndJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/customers", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Budi"}]}`))
	})

	res, err := c.ListCustomers(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Budi", res.Items[0].Name)
}

func TestClient_Login(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "secret1", body["password"])

		_, _ = w.Write([]byte(`{"data":{"token":"T","user":{"id":1,"email":"a@b.com","full_name":"A B","role":"admin"}}}`))
	})

	res, err := c.Login(context.Background(), domain.LoginInput{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "T", res.Token)
	assert.Equal(t, domain.ID("1"), res.User.ID)
	assert.Equal(t, domain.RoleAdmin, res.User.Role)
}

func TestClient_LoginUnauthorizedCarriesMessage(t *testing.T) {
	var hookCalls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	c.SetUnauthorizedHandler(func(ctx context.Context, sess *domain.Session) {
		atomic.AddInt32(&hookCalls, 1)
	})

	_, err := c.Login(context.Background(), domain.LoginInput{Email: "a@b.com", Password: "x"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Zero(t, atomic.LoadInt32(&hookCalls))
}

func TestClient_UnauthorizedInvokesHandler(t *testing.T) {
	var got *domain.Session
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c.SetUnauthorizedHandler(func(ctx context.Context, sess *domain.Session) {
		got = sess
	})

	sess := testSession()
	err := c.DeleteApproverTask(context.Background(), sess, "9")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Same(t, sess, got)
}

func TestClient_NonSuccessReturnsAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Assignment is not submitted"}`))
	})

	err := c.ReviewAssignment(context.Background(), testSession(), "5", domain.ReviewInput{Action: domain.ActionApprove})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Assignment is not submitted", apiErr.Message)
	assert.False(t, apiErr.NotFound())
}

func TestClient_ErrorFieldFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"not found"}`))
	})

	_, err := c.GetCustomer(context.Background(), testSession(), "1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "not found", apiErr.Message)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url, Timeout: time.Second})
	_, err := c.ListUsers(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_RetriesGetOnGatewayErrors(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"judul":"Cek"}]`))
	})

	res, err := c.ListApproverTasks(context.Background(), testSession())
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_RetryBudgetExhausted(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.ListAssignments(context.Background(), testSession())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_NeverRetriesWrites(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.CreateApproverTask(context.Background(), testSession(), domain.ApproverTaskInput{UserID: "1", Judul: "x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_EmptyBodyDecodesAsObject(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.DeleteAssignment(context.Background(), testSession(), "3")
	assert.NoError(t, err)
}

func TestClient_UsersFallbackToAgents(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"forbidden"}`))
		case "/users/agents":
			_, _ = w.Write([]byte(`{"data":[{"id":4,"email":"agent@lps.id","role":"agent"}]}`))
		}
	})

	res, err := c.ListUsersOrAgents(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.RoleAgent, res.Items[0].Role)
}

func TestClient_UsersFallbackSkippedOnUnauthorized(t *testing.T) {
	var agentCalls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/agents" {
			atomic.AddInt32(&agentCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListUsersOrAgents(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, atomic.LoadInt32(&agentCalls))
}

func TestClient_CreateEchoesInputWhenBackendOmitsRecord(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.NotContains(t, string(body), `"attachments":null`)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created"}`))
	})

	task, err := c.CreateApproverTask(context.Background(), testSession(), domain.ApproverTaskInput{
		UserID:      "2",
		Judul:       "Verifikasi",
		Attachments: []string{"https://x/a.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Verifikasi", task.Judul)
	assert.Equal(t, []string{"https://x/a.pdf"}, task.Attachments)
}
