package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Pipeline errors
	ErrSourceUnavailable = fmt.Errorf("source unavailable")
	ErrExtraction        = fmt.Errorf("extraction failed")
	ErrAuthFailed        = fmt.Errorf("authentication failed")
	ErrPlaylistMutation  = fmt.Errorf("playlist mutation failed")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
