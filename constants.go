// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

// Buffer-texture copy alignments.
const (
	// CopyBytesPerRowAlignment is the required alignment of BytesPerRow in
	// buffer-texture copies.
	CopyBytesPerRowAlignment = 256

	// CopyBufferAlignment is the alignment of buffer copy offsets and sizes.
	CopyBufferAlignment = 4
)
