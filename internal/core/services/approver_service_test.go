package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/attachment"
)

func TestApproverService_List(t *testing.T) {
	api := &fakeAPI{
		listTasksFn: func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.ApproverTask], error) {
			return lpsapi.ListResult[domain.ApproverTask]{Items: []domain.ApproverTask{
				{ID: "1", UserID: "5", Judul: "Verifikasi", Attachments: []string{"a.pdf", "b.png"}},
				{ID: "2", UserID: "6", Judul: "Survey"},
			}}, nil
		},
		listUsersOrAgentsFn: func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error) {
			return lpsapi.ListResult[domain.User]{Items: []domain.User{{ID: "5", Name: "Rina"}}}, nil
		},
	}

	view, err := NewApproverService(api, api).List(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Rina", view.Items[0].UserName)
	assert.Equal(t, 2, view.Items[0].AttachmentCount)
	assert.Equal(t, "Unknown User", view.Items[1].UserName)
	assert.Empty(t, view.Warnings)
}

func TestApproverService_Users_EmptyWarns(t *testing.T) {
	api := &fakeAPI{}

	view, err := NewApproverService(api, api).Users(context.Background(), testSession())
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, []string{noUsersWarning}, view.Warnings)
}

func TestApproverService_Users_FailureDegrades(t *testing.T) {
	api := &fakeAPI{
		listUsersOrAgentsFn: func(ctx context.Context, sess *domain.Session) (lpsapi.ListResult[domain.User], error) {
			return lpsapi.ListResult[domain.User]{}, errors.Join(lpsapi.ErrNetwork, errors.New("dial tcp"))
		},
	}

	view, err := NewApproverService(api, api).Users(context.Background(), testSession())
	require.NoError(t, err)
	assert.NotNil(t, view.Items)
	assert.Equal(t, []string{"users unavailable: server unreachable", noUsersWarning}, view.Warnings)
}

func TestApproverService_Get(t *testing.T) {
	api := &fakeAPI{
		getTaskFn: func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.ApproverTask, error) {
			return &domain.ApproverTask{
				ID:          id,
				UserID:      "5",
				Judul:       "Verifikasi",
				Attachments: []string{"https://files/ktp.JPG?sig=1", "https://files/form.pdf", "https://files/raw"},
			}, nil
		},
		getUserFn: func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.User, error) {
			return &domain.User{ID: id, FullName: "Rina Approver"}, nil
		},
	}

	detail, err := NewApproverService(api, api).Get(context.Background(), testSession(), "1")
	require.NoError(t, err)
	require.NotNil(t, detail.User)
	assert.Equal(t, "Rina Approver", detail.UserName)
	require.Len(t, detail.AttachmentPreviews, 3)
	assert.Equal(t, attachment.Image, detail.AttachmentPreviews[0].Category)
	assert.Equal(t, attachment.PDF, detail.AttachmentPreviews[1].Category)
	assert.Equal(t, attachment.SurfaceDownload, detail.AttachmentPreviews[2].Surface)
}

func TestApproverService_Get_UserLookupFails(t *testing.T) {
	api := &fakeAPI{
		getTaskFn: func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.ApproverTask, error) {
			return &domain.ApproverTask{ID: id, UserID: "5"}, nil
		},
		getUserFn: func(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.User, error) {
			return nil, &lpsapi.APIError{StatusCode: 404}
		},
	}

	detail, err := NewApproverService(api, api).Get(context.Background(), testSession(), "1")
	require.NoError(t, err)
	assert.Nil(t, detail.User)
	assert.Equal(t, "Unknown User", detail.UserName)
}

func TestApproverService_Create_Validation(t *testing.T) {
	api := &fakeAPI{}

	_, err := NewApproverService(api, api).Create(context.Background(), testSession(), domain.ApproverTaskInput{
		Judul: "Tanpa user",
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"user_id"}, verr.Fields)
	assert.Zero(t, api.count("CreateApproverTask"))
}

func TestApproverService_Update_DropsBlankAttachments(t *testing.T) {
	api := &fakeAPI{
		updateTaskFn: func(ctx context.Context, sess *domain.Session, id domain.ID, in domain.ApproverTaskInput) (*domain.ApproverTask, error) {
			assert.Equal(t, []string{"https://files/a.pdf"}, in.Attachments)
			return &domain.ApproverTask{ID: id, UserID: in.UserID, Judul: in.Judul, Attachments: in.Attachments}, nil
		},
	}

	task, err := NewApproverService(api, api).Update(context.Background(), testSession(), "3", domain.ApproverTaskInput{
		UserID:      "5",
		Judul:       "Verifikasi",
		Attachments: []string{"", "https://files/a.pdf", "   "},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("3"), task.ID)
}
