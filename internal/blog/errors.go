package blog

import (
	"errors"

	"github.com/beken0w/yatube/internal/validate"
)

var (
	// ErrNotFound is returned for unknown slugs, usernames and post IDs
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when an operation requires an
	// authenticated actor and none is present. The web layer turns this
	// into a login redirect carrying the original path.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated actor is not the
	// owner of the resource. The web layer redirects to a safe view
	// instead of surfacing an error body.
	ErrForbidden = errors.New("not the owner")

	// ErrEmptyText is returned for blank post or comment text
	ErrEmptyText = validate.ErrEmptyText

	// ErrTextTooLong is returned for comment text over the length limit
	ErrTextTooLong = validate.ErrTextTooLong
)
