package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []Action{ActionApprove, ActionReject}, AllowedActions(StatusSubmitted))
	assert.Equal(t, []Action{ActionDelete}, AllowedActions(StatusPending))

	for _, s := range []AssignmentStatus{StatusApproved, StatusRejected, StatusCancelled, "archived", ""} {
		actions := AllowedActions(s)
		assert.NotNil(t, actions)
		assert.Empty(t, actions, "status %q", s)
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, CanReview(StatusSubmitted))
	assert.False(t, CanReview(StatusPending))
	assert.True(t, CanDelete(StatusPending))
	assert.False(t, CanDelete(StatusSubmitted))
	assert.False(t, CanReview(StatusApproved))
	assert.False(t, CanDelete(StatusCancelled))
}

func TestReviewInput_Validate(t *testing.T) {
	in := ReviewInput{Action: ActionApprove}
	assert.NoError(t, in.Validate())

	in = ReviewInput{Action: ActionReject, Note: "   "}
	err := in.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"note"}, verr.Fields)

	in = ReviewInput{Action: ActionReject, Note: "  missing CIF  "}
	require.NoError(t, in.Validate())
	assert.Equal(t, "missing CIF", in.Note)

	in = ReviewInput{Action: "escalate"}
	require.ErrorAs(t, in.Validate(), &verr)
	assert.Equal(t, []string{"action"}, verr.Fields)
}

func TestBadges(t *testing.T) {
	assert.Equal(t, Badge{Variant: "warning", Label: "Pending"}, StatusBadge(StatusPending))
	assert.Equal(t, Badge{Variant: "secondary", Label: "archived"}, StatusBadge("archived"))
	assert.Equal(t, Badge{Variant: "danger", Label: "Admin"}, RoleBadge(RoleAdmin))
	assert.Equal(t, Badge{Variant: "secondary", Label: "auditor"}, RoleBadge("auditor"))
}
