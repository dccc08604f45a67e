package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

var (
	errLoginFirst        = fmt.Errorf("%w: run 'gopass login' first", service.ErrNotLoggedIn)
	errPasswordsDiffer   = errors.New("passwords do not match")
	errInvalidID         = errors.New("record id must be a positive number")
	errNotTerminal       = errors.New("cannot read a secret: stdin is not a terminal")
	errTooManyAttempts   = errors.New("too many invalid master key attempts")
	errNothingToUpdate   = errors.New("nothing to update: pass at least one flag")
	errDeleteNotApproved = errors.New("deletion cancelled")
)
