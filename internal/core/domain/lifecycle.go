package domain

import "strings"

// AssignmentStatus is the review status of an assignment.
// The backend is the authority on transitions; the values here only gate
// which actions are offered.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusApproved  AssignmentStatus = "approved"
	StatusRejected  AssignmentStatus = "rejected"
	StatusCancelled AssignmentStatus = "cancelled"
)

// Action is a mutating action offered on an assignment
type Action string

const (
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// CanReview is true only for submitted assignments
func CanReview(s AssignmentStatus) bool {
	return s == StatusSubmitted
}

// CanDelete is true only for pending assignments
func CanDelete(s AssignmentStatus) bool {
	return s == StatusPending
}

// AllowedActions returns the mutating actions offered for a status.
// Terminal and unknown statuses get none (view only).
func AllowedActions(s AssignmentStatus) []Action {
	switch {
	case CanReview(s):
		return []Action{ActionApprove, ActionReject}
	case CanDelete(s):
		return []Action{ActionDelete}
	default:
		return []Action{}
	}
}

// ReviewInput is an approve/reject decision on a submitted assignment
type ReviewInput struct {
	Action Action `json:"action"`
	Note   string `json:"note"`
}

// Validate checks the review before anything is sent upstream.
// Reject needs a non-blank note; approve accepts an empty one.
func (r *ReviewInput) Validate() error {
	r.Note = strings.TrimSpace(r.Note)

	switch r.Action {
	case ActionApprove:
		return nil
	case ActionReject:
		if r.Note == "" {
			return &ValidationError{
				Fields:  []string{"note"},
				Message: "note is required when rejecting",
			}
		}
		return nil
	default:
		return &ValidationError{
			Fields:  []string{"action"},
			Message: "action must be one of: approve reject",
		}
	}
}

// Badge describes how a status or role is shown
type Badge struct {
	Variant string `json:"variant"`
	Label   string `json:"label"`
}

var statusBadges = map[AssignmentStatus]Badge{
	StatusPending:   {Variant: "warning", Label: "Pending"},
	StatusSubmitted: {Variant: "success", Label: "Submitted"},
	StatusApproved:  {Variant: "primary", Label: "Approved"},
	StatusRejected:  {Variant: "danger", Label: "Rejected"},
	StatusCancelled: {Variant: "danger", Label: "Cancelled"},
}

var roleBadges = map[Role]Badge{
	RoleAdmin:    {Variant: "danger", Label: "Admin"},
	RoleAgent:    {Variant: "primary", Label: "Agent"},
	RoleApprover: {Variant: "warning", Label: "Approver"},
}

// StatusBadge maps a status to its badge; unknown statuses keep their raw text
func StatusBadge(s AssignmentStatus) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return Badge{Variant: "secondary", Label: string(s)}
}

// RoleBadge maps a role to its badge; unknown roles keep their raw text
func RoleBadge(r Role) Badge {
	if b, ok := roleBadges[r]; ok {
		return b
	}
	return Badge{Variant: "secondary", Label: string(r)}
}
