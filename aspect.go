// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import "fmt"

// TextureAspect selects a sub-view of a texture format: its depth or
// stencil component, or one plane of a multi-planar format.
//
// Functions that take an optional aspect accept *TextureAspect; nil means
// no aspect was given.
type TextureAspect uint8

// Texture aspects.
const (
	// TextureAspectAll addresses every component of the format.
	TextureAspectAll TextureAspect = iota
	TextureAspectStencilOnly
	TextureAspectDepthOnly
	TextureAspectPlane0
	TextureAspectPlane1
	TextureAspectPlane2

	textureAspectCount
)

var aspectNames = [textureAspectCount]string{
	"all", "stencil-only", "depth-only", "plane0", "plane1", "plane2",
}

// Ptr returns a pointer to a copy of a, for use as an optional argument.
func (a TextureAspect) Ptr() *TextureAspect { return &a }

// IsValid reports whether a is one of the defined aspects.
func (a TextureAspect) IsValid() bool { return a < textureAspectCount }

// String returns the serialized token of the aspect.
func (a TextureAspect) String() string {
	if a >= textureAspectCount {
		return fmt.Sprintf("TextureAspect(%d)", uint8(a))
	}
	return aspectNames[a]
}

// ParseTextureAspect decodes a serialized aspect token.
func ParseTextureAspect(s string) (TextureAspect, error) {
	for a := TextureAspect(0); a < textureAspectCount; a++ {
		if aspectNames[a] == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTextureAspect, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a TextureAspect) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTextureAspect, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *TextureAspect) UnmarshalText(text []byte) error {
	v, err := ParseTextureAspect(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// PlaneAspect returns the aspect addressing the given plane index.
func PlaneAspect(plane uint32) (TextureAspect, bool) {
	switch plane {
	case 0:
		return TextureAspectPlane0, true
	case 1:
		return TextureAspectPlane1, true
	case 2:
		return TextureAspectPlane2, true
	default:
		return 0, false
	}
}

// AspectSpecificFormat returns the format that the given aspect of f
// addresses.
//
// Combined depth-stencil formats resolve their depth aspect to the plain
// depth format and their stencil aspect to TextureFormatStencil8.
// TextureFormatNV12 resolves plane 0 to R8Unorm and plane 1 to RG8Unorm.
// Standalone depth or stencil formats queried with their own aspect, and
// any single-plane format queried with TextureAspectAll, resolve to
// themselves. Every other pair reports false.
func (f TextureFormat) AspectSpecificFormat(aspect TextureAspect) (TextureFormat, bool) {
	switch {
	case f == TextureFormatStencil8 && aspect == TextureAspectStencilOnly:
		return f, true
	case (f == TextureFormatDepth16Unorm || f == TextureFormatDepth24Plus || f == TextureFormatDepth32Float) &&
		aspect == TextureAspectDepthOnly:
		return f, true
	}

	switch f {
	case TextureFormatDepth24PlusStencil8:
		switch aspect {
		case TextureAspectDepthOnly:
			return TextureFormatDepth24Plus, true
		case TextureAspectStencilOnly:
			return TextureFormatStencil8, true
		}
	case TextureFormatDepth32FloatStencil8:
		switch aspect {
		case TextureAspectDepthOnly:
			return TextureFormatDepth32Float, true
		case TextureAspectStencilOnly:
			return TextureFormatStencil8, true
		}
	case TextureFormatNV12:
		switch aspect {
		case TextureAspectPlane0:
			return TextureFormatR8Unorm, true
		case TextureAspectPlane1:
			return TextureFormatRG8Unorm, true
		}
	}

	if aspect == TextureAspectAll && f.IsValid() && !f.IsMultiPlanarFormat() {
		return f, true
	}
	return 0, false
}

// IsDepthStencilComponent reports whether f is the standalone format of
// one aspect of the combined depth-stencil format combined.
func (f TextureFormat) IsDepthStencilComponent(combined TextureFormat) bool {
	switch combined {
	case TextureFormatDepth24PlusStencil8:
		return f == TextureFormatDepth24Plus || f == TextureFormatStencil8
	case TextureFormatDepth32FloatStencil8:
		return f == TextureFormatDepth32Float || f == TextureFormatStencil8
	default:
		return false
	}
}
