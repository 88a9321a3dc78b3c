// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError signals a non-zero exit code. Without Err the command is
// expected to have already written its own output and nothing more is
// printed; with Err the message is printed like any other error.
//
// This is useful for commands where a non-zero exit is a valid outcome
// (e.g., "equal" returning 1 for different inputs) rather than an
// unexpected error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the wrapped error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exit reports err on stderr and returns the process exit code for it:
// 0 for nil, the code of an [ExitError] or any error with an ExitCode
// method, and 1 otherwise.
func Exit(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "error: %v\n", err)

	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}
