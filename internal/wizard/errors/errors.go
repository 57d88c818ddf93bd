package errors

import "errors"

var (
	// ErrNoSession is raised (as a panic) when wizard operations are called
	// without an initialized session.
	ErrNoSession = errors.New("wizard operation used outside an initialized booking session")

	ErrNotFound = errors.New("booking session not found")

	ErrNotReady = errors.New("booking session is not ready for submission")

	ErrSubmissionInProgress = errors.New("booking submission already in progress")

	ErrInvalidStep = errors.New("invalid wizard step")
)
