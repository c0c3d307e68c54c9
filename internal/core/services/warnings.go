package services

import (
	"errors"
	"fmt"

	"lps-admin/internal/adapters/lpsapi"
)

// degrade turns a failed secondary fetch into a warning. Authentication
// failures are never degraded: the session is gone and the caller must stop.
func degrade(what string, err error) (string, error) {
	if errors.Is(err, lpsapi.ErrUnauthorized) {
		return "", err
	}
	return fmt.Sprintf("%s unavailable: %s", what, describe(err)), nil
}

func describe(err error) string {
	var apiErr *lpsapi.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.As(err, &apiErr):
		return fmt.Sprintf("status %d", apiErr.StatusCode)
	case errors.Is(err, lpsapi.ErrNetwork):
		return "server unreachable"
	default:
		return err.Error()
	}
}
