// SPDX-License-Identifier: MIT

package cli

// Exit codes returned through ExitError.
const (
	ExitFailure = 1 // an engine or I/O step failed
	ExitUsage   = 2 // bad arguments or configuration
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(msg string) *ExitError {
	return &ExitError{Code: ExitUsage, Message: msg}
}
