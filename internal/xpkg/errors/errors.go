package errors

import "errors"

// Shared infrastructure sentinels. Business-rule errors live in the pos core
// package; these cover the CLI dispatch and connection failures common to
// every service mode.
var (
	ErrParseCmd       = errors.New("cannot parse arguments")
	ErrHelp           = errors.New("help requested")
	ErrModeFlag       = errors.New("mode flag is required")
	ErrUnknownService = errors.New("unknown service, write --help command to see valid services")

	ErrDBConn = errors.New("db connection failure")
	ErrMBConn = errors.New("message broker connection failure")
	ErrMBCh   = errors.New("message broker channel failure")
)
