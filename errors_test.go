// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestLimitErrorMessage(t *testing.T) {
	err := &LimitError{Limit: "MaxBindGroups", Requested: 8, Allowed: 4}
	want := "wgtypes: limit MaxBindGroups: requested 8, allowed 4"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFeatureErrorMessage(t *testing.T) {
	err := &FeatureError{Format: TextureFormatNV12, Missing: FeatureTextureFormatNV12}
	msg := err.Error()
	if !strings.Contains(msg, "nv12") || !strings.Contains(msg, "texture-format-nv12") {
		t.Errorf("Error() = %q, want format and feature names", msg)
	}
}

func TestErrorHelpersWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create device: %w", &LimitError{Limit: "MaxVertexBuffers"})
	if !IsLimitError(wrapped) {
		t.Error("IsLimitError(wrapped) = false")
	}
	if IsFeatureError(wrapped) {
		t.Error("IsFeatureError(limit error) = true")
	}
	if IsLimitError(errors.New("other")) || IsLimitError(nil) {
		t.Error("IsLimitError() = true for unrelated error")
	}

	fe := fmt.Errorf("create texture: %w", &FeatureError{Format: TextureFormatBC1RGBAUnorm})
	if !IsFeatureError(fe) {
		t.Error("IsFeatureError(wrapped) = false")
	}
}
