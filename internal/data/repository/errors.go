package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateUsername is returned by administrator/customer Create when the
// store-level uniqueness constraint rejects the write. Callers that already
// checked availability can still see it under concurrent creation.
var ErrDuplicateUsername = errors.New("username already taken")

var errSessionRevoked = errors.New("session not found or already revoked")

func errNotPersisted(kind string, id uuid.UUID) error {
	return fmt.Errorf("%s %s not found", kind, id.String())
}
