// Package service holds the business rules between handlers and repositories.
package service

import (
	"errors"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("service")

var (
	// ErrEmailMismatch means the requested email is not the authenticated one
	ErrEmailMismatch = errors.New("email does not match the authenticated user")
)
