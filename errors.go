// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrUnknownTextureFormat is returned when a format token or value does
	// not name one of the defined texture formats.
	ErrUnknownTextureFormat = errors.New("wgtypes: unknown texture format")

	// ErrUnknownTextureAspect is returned when an aspect token or value does
	// not name one of the defined aspects.
	ErrUnknownTextureAspect = errors.New("wgtypes: unknown texture aspect")
)

// LimitError reports one limit whose requested value is not compatible
// with the allowed value.
type LimitError struct {
	Limit     string // Field name, e.g. "MaxBindGroups"
	Requested uint64 // Value asked for
	Allowed   uint64 // Value the adapter or preset allows
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("wgtypes: limit %s: requested %d, allowed %d", e.Limit, e.Requested, e.Allowed)
}

// FeatureError reports that a texture format needs features that are not
// enabled.
type FeatureError struct {
	Format  TextureFormat
	Missing Features
}

// Error implements the error interface.
func (e *FeatureError) Error() string {
	return fmt.Sprintf("wgtypes: format %s requires features %s which are not enabled", e.Format, e.Missing)
}

// IsLimitError returns true if err is or wraps a *LimitError.
func IsLimitError(err error) bool {
	var le *LimitError
	return errors.As(err, &le)
}

// IsFeatureError returns true if err is or wraps a *FeatureError.
func IsFeatureError(err error) bool {
	var fe *FeatureError
	return errors.As(err, &fe)
}
