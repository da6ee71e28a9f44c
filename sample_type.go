// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import "fmt"

// TextureSampleKind is the shader-visible category of a texture's texels.
type TextureSampleKind uint8

// Sample kinds.
const (
	SampleKindFloat TextureSampleKind = iota
	SampleKindDepth
	SampleKindSint
	SampleKindUint
)

// String returns the WGSL-style name of the kind.
func (k TextureSampleKind) String() string {
	switch k {
	case SampleKindFloat:
		return "float"
	case SampleKindDepth:
		return "depth"
	case SampleKindSint:
		return "sint"
	case SampleKindUint:
		return "uint"
	default:
		return fmt.Sprintf("TextureSampleKind(%d)", uint8(k))
	}
}

// TextureSampleType is the type a shader reads from a texture.
// Filterable is only meaningful for SampleKindFloat.
type TextureSampleType struct {
	Kind       TextureSampleKind
	Filterable bool
}

// Common sample types.
var (
	SampleTypeFilterableFloat   = TextureSampleType{Kind: SampleKindFloat, Filterable: true}
	SampleTypeUnfilterableFloat = TextureSampleType{Kind: SampleKindFloat}
	SampleTypeDepth             = TextureSampleType{Kind: SampleKindDepth}
	SampleTypeSint              = TextureSampleType{Kind: SampleKindSint}
	SampleTypeUint              = TextureSampleType{Kind: SampleKindUint}
)

// IsFilterableFloat reports whether t is a float type that can be
// sampled with a filtering sampler.
func (t TextureSampleType) IsFilterableFloat() bool {
	return t.Kind == SampleKindFloat && t.Filterable
}

// String returns a short description such as "float(filterable)".
func (t TextureSampleType) String() string {
	if t.Kind == SampleKindFloat {
		if t.Filterable {
			return "float(filterable)"
		}
		return "float(unfilterable)"
	}
	return t.Kind.String()
}

// SampleType returns the sample type a shader sees when reading the given
// aspect of f.
//
// features is the set of enabled features, or nil when none was supplied.
// Only the 32-bit float color formats depend on it: they are filterable
// when FeatureFloat32Filterable is present, and unfilterable when it is
// absent or features is nil.
//
// Combined depth-stencil formats need a depth or stencil aspect and
// TextureFormatNV12 needs a plane aspect; any other aspect reports false.
func (f TextureFormat) SampleType(aspect *TextureAspect, features *Features) (TextureSampleType, bool) {
	switch f {
	case TextureFormatR8Unorm, TextureFormatR8Snorm, TextureFormatRG8Unorm, TextureFormatRG8Snorm,
		TextureFormatRGBA8Unorm, TextureFormatRGBA8UnormSrgb, TextureFormatRGBA8Snorm,
		TextureFormatBGRA8Unorm, TextureFormatBGRA8UnormSrgb,
		TextureFormatR16Float, TextureFormatRG16Float, TextureFormatRGBA16Float,
		TextureFormatRGB10A2Unorm, TextureFormatRG11B10Ufloat:
		return SampleTypeFilterableFloat, true

	case TextureFormatR32Float, TextureFormatRG32Float, TextureFormatRGBA32Float:
		filterable := features != nil && features.Contains(FeatureFloat32Filterable)
		return TextureSampleType{Kind: SampleKindFloat, Filterable: filterable}, true

	case TextureFormatR8Uint, TextureFormatRG8Uint, TextureFormatRGBA8Uint,
		TextureFormatR16Uint, TextureFormatRG16Uint, TextureFormatRGBA16Uint,
		TextureFormatR32Uint, TextureFormatRG32Uint, TextureFormatRGBA32Uint,
		TextureFormatRGB10A2Uint:
		return SampleTypeUint, true

	case TextureFormatR8Sint, TextureFormatRG8Sint, TextureFormatRGBA8Sint,
		TextureFormatR16Sint, TextureFormatRG16Sint, TextureFormatRGBA16Sint,
		TextureFormatR32Sint, TextureFormatRG32Sint, TextureFormatRGBA32Sint:
		return SampleTypeSint, true

	case TextureFormatStencil8:
		return SampleTypeUint, true
	case TextureFormatDepth16Unorm, TextureFormatDepth24Plus, TextureFormatDepth32Float:
		return SampleTypeDepth, true

	case TextureFormatDepth24PlusStencil8, TextureFormatDepth32FloatStencil8:
		if aspect != nil {
			switch *aspect {
			case TextureAspectDepthOnly:
				return SampleTypeDepth, true
			case TextureAspectStencilOnly:
				return SampleTypeUint, true
			}
		}
		return TextureSampleType{}, false

	case TextureFormatNV12:
		if aspect != nil && (*aspect == TextureAspectPlane0 || *aspect == TextureAspectPlane1) {
			return SampleTypeUnfilterableFloat, true
		}
		return TextureSampleType{}, false

	case TextureFormatR16Unorm, TextureFormatR16Snorm, TextureFormatRG16Unorm, TextureFormatRG16Snorm,
		TextureFormatRGBA16Unorm, TextureFormatRGBA16Snorm:
		return SampleTypeFilterableFloat, true

	case TextureFormatRGB9E5Ufloat:
		return SampleTypeFilterableFloat, true
	}

	if f.IsValid() {
		// Block-compressed formats.
		return SampleTypeFilterableFloat, true
	}
	return TextureSampleType{}, false
}
