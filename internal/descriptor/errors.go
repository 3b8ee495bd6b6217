// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"errors"
	"fmt"
)

// ErrMalformedDescriptor is matched by every decoding failure.
var ErrMalformedDescriptor = errors.New("malformed descriptor")

// MalformedDescriptorError reports where and why a descriptor string could not
// be decoded.
type MalformedDescriptorError struct {
	Reason    string
	Offset    int
	Remainder string
}

// Error implements the error interface.
func (e *MalformedDescriptorError) Error() string {
	if e.Remainder == "" {
		return fmt.Sprintf("malformed descriptor: %s at offset %d (end of input)", e.Reason, e.Offset)
	}
	return fmt.Sprintf("malformed descriptor: %s at offset %d (remaining %q)", e.Reason, e.Offset, e.Remainder)
}

// Unwrap lets errors.Is match ErrMalformedDescriptor.
func (e *MalformedDescriptorError) Unwrap() error {
	return ErrMalformedDescriptor
}
