//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package errors

import "fmt"

type InternalError struct {
	msg  string // message associated to the error
	code int    // error code
}

type ProfilerError struct {
	internal InternalError
	details  error
}

// ErrNone means success
var ErrNone = InternalError{"Success", 0}

// ErrNotFound means that the object/entity requested could not be found
var ErrNotFound = InternalError{"Not found", -1}

// ErrInvalidInput means that a value given by the caller cannot be used
var ErrInvalidInput = InternalError{"Invalid input", -2}

// ErrFatal means that a fatal error occured
var ErrFatal = InternalError{"Fatal error", -3}

func New(i InternalError, err error) *ProfilerError {
	e := new(ProfilerError)
	e.details = err
	e.internal = i
	return e
}

func (e *ProfilerError) Is(i InternalError) bool {
	return e.internal == i
}

func (e *ProfilerError) GetInternal() error {
	return e.details
}

// Code returns the numeric code of the error
func (e *ProfilerError) Code() int {
	return e.internal.code
}

func (e *ProfilerError) Error() string {
	if e.details == nil {
		return e.internal.msg
	}
	return fmt.Sprintf("%s: %s", e.internal.msg, e.details)
}

// Unwrap gives access to the details of the error
func (e *ProfilerError) Unwrap() error {
	return e.details
}
