package funpay

import (
	"errors"
	"fmt"
)

// ErrInvalidGoldenKey means the site rejected the identity cookie outright.
// Refreshing the session pair cannot fix it, so it surfaces immediately.
var ErrInvalidGoldenKey = errors.New("golden key was rejected")

// ErrAlreadyRaised means the raise endpoint answered with its cooldown
// message instead of raising the offers again.
var ErrAlreadyRaised = errors.New("offers were already raised")

// errStaleSession is the recoverable stale-credential signal that drives the
// one-shot refresh-and-retry inside the client.
var errStaleSession = errors.New("csrf token or session id is stale")

// NotFoundError is raised when a page renders the site's canonical
// "not found" shape. ID keeps the display form of whichever id was requested.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ExtractError wraps a violated structural assumption: a missing element, an
// unparseable number, a malformed JSON envelope.
type ExtractError struct {
	Page string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s page: %s", e.Page, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

func extractErr(page string, format string, args ...any) error {
	return &ExtractError{Page: page, Err: fmt.Errorf(format, args...)}
}
