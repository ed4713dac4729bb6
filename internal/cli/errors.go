package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

var (
	ErrNoSession       = errors.New("no saved session")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrUnknownField    = errors.New("unknown field")
	ErrNothingToUpdate = errors.New("nothing to update, pass at least one field flag")
)

// withHint adds a next step to errors the user can act on.
func withHint(err error) error {
	switch {
	case errors.Is(err, adapter.ErrNoToken), errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w (run \"vaultctl login\")", err)
	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w (wait a moment and retry)", err)
	}
	return err
}
