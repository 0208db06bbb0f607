//lint:file-ignore ST1005 these errors are shown to the end user verbatim

package store

import (
	"errors"
	"strings"
)

// Mutation failures carry the exact alert text the view layer shows. The
// pending edit buffer is the caller's to keep, so the user can retry.
var (
	ErrCreateFailed = errors.New("Cannot add data. Server error!")
	ErrUpdateFailed = errors.New("Update failed! Server error")
	ErrDeleteFailed = errors.New("Delete failed! Server error")
)

// ValidationError aggregates the field messages for one rejected submission.
// It is produced before any network call.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// AsValidation unwraps err into a ValidationError, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
