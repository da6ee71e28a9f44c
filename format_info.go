// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

// IsBCn reports whether f is one of the BC block-compressed formats.
func (f TextureFormat) IsBCn() bool {
	return f >= TextureFormatBC1RGBAUnorm && f <= TextureFormatBC7RGBAUnormSrgb
}

// isETC2 reports whether f is one of the ETC2 or EAC formats.
func (f TextureFormat) isETC2() bool {
	return f >= TextureFormatETC2RGB8Unorm && f <= TextureFormatEACRG11Snorm
}

// BlockDimensions returns the width and height in texels of the smallest
// addressable unit of f. It is (1, 1) for uncompressed formats.
func (f TextureFormat) BlockDimensions() (width, height uint32) {
	if block, _, ok := f.ASTC(); ok {
		return block.Dimensions()
	}
	if f.IsBCn() || f.isETC2() {
		return 4, 4
	}
	return 1, 1
}

// IsCompressed reports whether f stores texels in blocks larger than 1x1.
func (f TextureFormat) IsCompressed() bool {
	w, h := f.BlockDimensions()
	return w != 1 || h != 1
}

// BlockCopySize returns the number of bytes one block occupies in a
// buffer-texture copy of the given aspect.
//
// It reports false for Depth24Plus, whose size is backend dependent, and
// for combined depth-stencil or multi-planar formats when aspect is nil or
// does not select a copyable component.
func (f TextureFormat) BlockCopySize(aspect *TextureAspect) (uint32, bool) {
	switch f {
	case TextureFormatR8Unorm, TextureFormatR8Snorm, TextureFormatR8Uint, TextureFormatR8Sint:
		return 1, true

	case TextureFormatRG8Unorm, TextureFormatRG8Snorm, TextureFormatRG8Uint, TextureFormatRG8Sint,
		TextureFormatR16Unorm, TextureFormatR16Snorm, TextureFormatR16Uint, TextureFormatR16Sint,
		TextureFormatR16Float:
		return 2, true

	case TextureFormatRGBA8Unorm, TextureFormatRGBA8UnormSrgb, TextureFormatRGBA8Snorm,
		TextureFormatRGBA8Uint, TextureFormatRGBA8Sint,
		TextureFormatBGRA8Unorm, TextureFormatBGRA8UnormSrgb,
		TextureFormatRG16Unorm, TextureFormatRG16Snorm, TextureFormatRG16Uint, TextureFormatRG16Sint,
		TextureFormatRG16Float,
		TextureFormatR32Uint, TextureFormatR32Sint, TextureFormatR32Float,
		TextureFormatRGB9E5Ufloat, TextureFormatRGB10A2Uint, TextureFormatRGB10A2Unorm,
		TextureFormatRG11B10Ufloat:
		return 4, true

	case TextureFormatRGBA16Unorm, TextureFormatRGBA16Snorm, TextureFormatRGBA16Uint,
		TextureFormatRGBA16Sint, TextureFormatRGBA16Float,
		TextureFormatRG32Uint, TextureFormatRG32Sint, TextureFormatRG32Float:
		return 8, true

	case TextureFormatRGBA32Uint, TextureFormatRGBA32Sint, TextureFormatRGBA32Float:
		return 16, true

	case TextureFormatStencil8:
		return 1, true
	case TextureFormatDepth16Unorm:
		return 2, true
	case TextureFormatDepth32Float:
		return 4, true
	case TextureFormatDepth24Plus:
		return 0, false

	case TextureFormatDepth24PlusStencil8:
		if aspect != nil && *aspect == TextureAspectStencilOnly {
			return 1, true
		}
		return 0, false
	case TextureFormatDepth32FloatStencil8:
		if aspect != nil {
			switch *aspect {
			case TextureAspectDepthOnly:
				return 4, true
			case TextureAspectStencilOnly:
				return 1, true
			}
		}
		return 0, false

	case TextureFormatNV12:
		if aspect != nil {
			switch *aspect {
			case TextureAspectPlane0:
				return 1, true
			case TextureAspectPlane1:
				return 2, true
			}
		}
		return 0, false

	case TextureFormatBC1RGBAUnorm, TextureFormatBC1RGBAUnormSrgb,
		TextureFormatBC4RUnorm, TextureFormatBC4RSnorm:
		return 8, true
	case TextureFormatBC2RGBAUnorm, TextureFormatBC2RGBAUnormSrgb,
		TextureFormatBC3RGBAUnorm, TextureFormatBC3RGBAUnormSrgb,
		TextureFormatBC5RGUnorm, TextureFormatBC5RGSnorm,
		TextureFormatBC6HRGBUfloat, TextureFormatBC6HRGBFloat,
		TextureFormatBC7RGBAUnorm, TextureFormatBC7RGBAUnormSrgb:
		return 16, true

	case TextureFormatETC2RGB8Unorm, TextureFormatETC2RGB8UnormSrgb,
		TextureFormatETC2RGB8A1Unorm, TextureFormatETC2RGB8A1UnormSrgb,
		TextureFormatEACR11Unorm, TextureFormatEACR11Snorm:
		return 8, true
	case TextureFormatETC2RGBA8Unorm, TextureFormatETC2RGBA8UnormSrgb,
		TextureFormatEACRG11Unorm, TextureFormatEACRG11Snorm:
		return 16, true
	}

	if _, _, ok := f.ASTC(); ok {
		return 16, true
	}
	return 0, false
}

// Components returns the number of components of f across all aspects.
func (f TextureFormat) Components() uint8 {
	return f.ComponentsWithAspect(TextureAspectAll)
}

// ComponentsWithAspect returns the number of components the given aspect
// of f holds. Depth and stencil count as one component each. Invalid
// formats report 0.
func (f TextureFormat) ComponentsWithAspect(aspect TextureAspect) uint8 {
	switch f {
	case TextureFormatR8Unorm, TextureFormatR8Snorm, TextureFormatR8Uint, TextureFormatR8Sint,
		TextureFormatR16Unorm, TextureFormatR16Snorm, TextureFormatR16Uint, TextureFormatR16Sint,
		TextureFormatR16Float,
		TextureFormatR32Uint, TextureFormatR32Sint, TextureFormatR32Float:
		return 1

	case TextureFormatRG8Unorm, TextureFormatRG8Snorm, TextureFormatRG8Uint, TextureFormatRG8Sint,
		TextureFormatRG16Unorm, TextureFormatRG16Snorm, TextureFormatRG16Uint, TextureFormatRG16Sint,
		TextureFormatRG16Float,
		TextureFormatRG32Uint, TextureFormatRG32Sint, TextureFormatRG32Float:
		return 2

	case TextureFormatRGBA8Unorm, TextureFormatRGBA8UnormSrgb, TextureFormatRGBA8Snorm,
		TextureFormatRGBA8Uint, TextureFormatRGBA8Sint,
		TextureFormatBGRA8Unorm, TextureFormatBGRA8UnormSrgb,
		TextureFormatRGBA16Unorm, TextureFormatRGBA16Snorm, TextureFormatRGBA16Uint,
		TextureFormatRGBA16Sint, TextureFormatRGBA16Float,
		TextureFormatRGBA32Uint, TextureFormatRGBA32Sint, TextureFormatRGBA32Float:
		return 4

	case TextureFormatRGB9E5Ufloat, TextureFormatRG11B10Ufloat:
		return 3
	case TextureFormatRGB10A2Uint, TextureFormatRGB10A2Unorm:
		return 4

	case TextureFormatStencil8, TextureFormatDepth16Unorm, TextureFormatDepth24Plus,
		TextureFormatDepth32Float:
		return 1

	case TextureFormatDepth24PlusStencil8, TextureFormatDepth32FloatStencil8:
		switch aspect {
		case TextureAspectDepthOnly, TextureAspectStencilOnly:
			return 1
		default:
			return 2
		}

	case TextureFormatNV12:
		switch aspect {
		case TextureAspectPlane0:
			return 1
		case TextureAspectPlane1:
			return 2
		default:
			return 3
		}

	case TextureFormatBC4RUnorm, TextureFormatBC4RSnorm:
		return 1
	case TextureFormatBC5RGUnorm, TextureFormatBC5RGSnorm:
		return 2
	case TextureFormatBC6HRGBUfloat, TextureFormatBC6HRGBFloat:
		return 3
	case TextureFormatBC1RGBAUnorm, TextureFormatBC1RGBAUnormSrgb,
		TextureFormatBC2RGBAUnorm, TextureFormatBC2RGBAUnormSrgb,
		TextureFormatBC3RGBAUnorm, TextureFormatBC3RGBAUnormSrgb,
		TextureFormatBC7RGBAUnorm, TextureFormatBC7RGBAUnormSrgb:
		return 4

	case TextureFormatEACR11Unorm, TextureFormatEACR11Snorm:
		return 1
	case TextureFormatEACRG11Unorm, TextureFormatEACRG11Snorm:
		return 2
	case TextureFormatETC2RGB8Unorm, TextureFormatETC2RGB8UnormSrgb,
		TextureFormatETC2RGB8A1Unorm, TextureFormatETC2RGB8A1UnormSrgb:
		return 3
	case TextureFormatETC2RGBA8Unorm, TextureFormatETC2RGBA8UnormSrgb:
		return 4
	}

	if _, _, ok := f.ASTC(); ok {
		return 4
	}
	return 0
}

// RequiredFeatures returns the features that must be enabled for f to be
// usable at all. It is empty for formats every device supports.
func (f TextureFormat) RequiredFeatures() Features {
	switch f {
	case TextureFormatDepth32FloatStencil8:
		return FeatureDepth32FloatStencil8
	case TextureFormatNV12:
		return FeatureTextureFormatNV12
	case TextureFormatR16Unorm, TextureFormatR16Snorm,
		TextureFormatRG16Unorm, TextureFormatRG16Snorm,
		TextureFormatRGBA16Unorm, TextureFormatRGBA16Snorm:
		return FeatureTextureFormat16BitNorm
	}
	if f.IsBCn() {
		return FeatureTextureCompressionBC
	}
	if f.isETC2() {
		return FeatureTextureCompressionETC2
	}
	if _, channel, ok := f.ASTC(); ok {
		if channel == AstcChannelHdr {
			return FeatureTextureCompressionASTCHDR
		}
		return FeatureTextureCompressionASTC
	}
	return 0
}

// CheckFeatures returns a *FeatureError if enabled lacks any feature f
// requires.
func (f TextureFormat) CheckFeatures(enabled Features) error {
	if missing := f.RequiredFeatures().Difference(enabled); missing != 0 {
		return &FeatureError{Format: f, Missing: missing}
	}
	return nil
}

// IsDepthStencilFormat reports whether f has a depth or stencil aspect.
func (f TextureFormat) IsDepthStencilFormat() bool {
	switch f {
	case TextureFormatStencil8, TextureFormatDepth16Unorm, TextureFormatDepth24Plus,
		TextureFormatDepth24PlusStencil8, TextureFormatDepth32Float,
		TextureFormatDepth32FloatStencil8:
		return true
	}
	return false
}

// IsCombinedDepthStencilFormat reports whether f has both a depth and a
// stencil aspect.
func (f TextureFormat) IsCombinedDepthStencilFormat() bool {
	return f == TextureFormatDepth24PlusStencil8 || f == TextureFormatDepth32FloatStencil8
}

// Planes returns the number of planes of a multi-planar format.
func (f TextureFormat) Planes() (uint32, bool) {
	if f == TextureFormatNV12 {
		return 2, true
	}
	return 0, false
}

// IsMultiPlanarFormat reports whether f stores its components in
// separate planes.
func (f TextureFormat) IsMultiPlanarFormat() bool {
	_, ok := f.Planes()
	return ok
}

// HasColorAspect reports whether f holds color data.
func (f TextureFormat) HasColorAspect() bool {
	return f.IsValid() && !f.IsDepthStencilFormat()
}

// HasDepthAspect reports whether f holds depth data.
func (f TextureFormat) HasDepthAspect() bool {
	switch f {
	case TextureFormatDepth16Unorm, TextureFormatDepth24Plus, TextureFormatDepth24PlusStencil8,
		TextureFormatDepth32Float, TextureFormatDepth32FloatStencil8:
		return true
	}
	return false
}

// HasStencilAspect reports whether f holds stencil data.
func (f TextureFormat) HasStencilAspect() bool {
	switch f {
	case TextureFormatStencil8, TextureFormatDepth24PlusStencil8, TextureFormatDepth32FloatStencil8:
		return true
	}
	return false
}

// SizeMultipleRequirement returns the values texture width and height
// must be multiples of.
func (f TextureFormat) SizeMultipleRequirement() (width, height uint32) {
	if f == TextureFormatNV12 {
		return 2, 2
	}
	return f.BlockDimensions()
}

// srgbPairs maps each linear format to its sRGB counterpart.
var srgbPairs = map[TextureFormat]TextureFormat{
	TextureFormatRGBA8Unorm:      TextureFormatRGBA8UnormSrgb,
	TextureFormatBGRA8Unorm:      TextureFormatBGRA8UnormSrgb,
	TextureFormatBC1RGBAUnorm:    TextureFormatBC1RGBAUnormSrgb,
	TextureFormatBC2RGBAUnorm:    TextureFormatBC2RGBAUnormSrgb,
	TextureFormatBC3RGBAUnorm:    TextureFormatBC3RGBAUnormSrgb,
	TextureFormatBC7RGBAUnorm:    TextureFormatBC7RGBAUnormSrgb,
	TextureFormatETC2RGB8Unorm:   TextureFormatETC2RGB8UnormSrgb,
	TextureFormatETC2RGB8A1Unorm: TextureFormatETC2RGB8A1UnormSrgb,
	TextureFormatETC2RGBA8Unorm:  TextureFormatETC2RGBA8UnormSrgb,
}

var srgbLinear = func() map[TextureFormat]TextureFormat {
	m := make(map[TextureFormat]TextureFormat, len(srgbPairs))
	for linear, srgb := range srgbPairs {
		m[srgb] = linear
	}
	return m
}()

// RemoveSrgbSuffix returns the linear counterpart of an sRGB format, or f
// itself if it has none.
func (f TextureFormat) RemoveSrgbSuffix() TextureFormat {
	if block, channel, ok := f.ASTC(); ok && channel == AstcChannelUnormSrgb {
		return ASTC(block, AstcChannelUnorm)
	}
	if linear, ok := srgbLinear[f]; ok {
		return linear
	}
	return f
}

// AddSrgbSuffix returns the sRGB counterpart of a linear format, or f
// itself if it has none.
func (f TextureFormat) AddSrgbSuffix() TextureFormat {
	if block, channel, ok := f.ASTC(); ok && channel == AstcChannelUnorm {
		return ASTC(block, AstcChannelUnormSrgb)
	}
	if srgb, ok := srgbPairs[f]; ok {
		return srgb
	}
	return f
}

// IsSrgb reports whether f applies the sRGB transfer function.
func (f TextureFormat) IsSrgb() bool {
	return f != f.RemoveSrgbSuffix()
}

// TargetPixelByteCost returns the number of bytes a pixel of f costs
// against the per-sample color attachment budget
// (Limits.MaxColorAttachmentBytesPerSample). It reports false for formats
// that cannot be color attachments.
func (f TextureFormat) TargetPixelByteCost() (uint32, bool) {
	switch f {
	case TextureFormatR8Unorm, TextureFormatR8Snorm, TextureFormatR8Uint, TextureFormatR8Sint:
		return 1, true
	case TextureFormatRG8Unorm, TextureFormatRG8Snorm, TextureFormatRG8Uint, TextureFormatRG8Sint,
		TextureFormatR16Uint, TextureFormatR16Sint, TextureFormatR16Unorm, TextureFormatR16Snorm,
		TextureFormatR16Float:
		return 2, true
	case TextureFormatRGBA8Uint, TextureFormatRGBA8Sint,
		TextureFormatRG16Uint, TextureFormatRG16Sint, TextureFormatRG16Unorm, TextureFormatRG16Snorm,
		TextureFormatRG16Float,
		TextureFormatR32Uint, TextureFormatR32Sint, TextureFormatR32Float:
		return 4, true
	case TextureFormatRGBA8Unorm, TextureFormatRGBA8UnormSrgb, TextureFormatRGBA8Snorm,
		TextureFormatBGRA8Unorm, TextureFormatBGRA8UnormSrgb,
		TextureFormatRGBA16Uint, TextureFormatRGBA16Sint, TextureFormatRGBA16Unorm,
		TextureFormatRGBA16Snorm, TextureFormatRGBA16Float,
		TextureFormatRG32Uint, TextureFormatRG32Sint, TextureFormatRG32Float,
		TextureFormatRGB10A2Uint, TextureFormatRGB10A2Unorm, TextureFormatRG11B10Ufloat:
		return 8, true
	case TextureFormatRGBA32Uint, TextureFormatRGBA32Sint, TextureFormatRGBA32Float:
		return 16, true
	}
	return 0, false
}

// TargetComponentAlignment returns the byte alignment of one component of
// f when it is a color attachment.
func (f TextureFormat) TargetComponentAlignment() (uint32, bool) {
	switch f {
	case TextureFormatR8Unorm, TextureFormatR8Snorm, TextureFormatR8Uint, TextureFormatR8Sint,
		TextureFormatRG8Unorm, TextureFormatRG8Snorm, TextureFormatRG8Uint, TextureFormatRG8Sint,
		TextureFormatRGBA8Unorm, TextureFormatRGBA8UnormSrgb, TextureFormatRGBA8Snorm,
		TextureFormatRGBA8Uint, TextureFormatRGBA8Sint,
		TextureFormatBGRA8Unorm, TextureFormatBGRA8UnormSrgb:
		return 1, true
	case TextureFormatR16Uint, TextureFormatR16Sint, TextureFormatR16Unorm, TextureFormatR16Snorm,
		TextureFormatR16Float,
		TextureFormatRG16Uint, TextureFormatRG16Sint, TextureFormatRG16Unorm, TextureFormatRG16Snorm,
		TextureFormatRG16Float,
		TextureFormatRGBA16Uint, TextureFormatRGBA16Sint, TextureFormatRGBA16Unorm,
		TextureFormatRGBA16Snorm, TextureFormatRGBA16Float:
		return 2, true
	case TextureFormatR32Uint, TextureFormatR32Sint, TextureFormatR32Float,
		TextureFormatRG32Uint, TextureFormatRG32Sint, TextureFormatRG32Float,
		TextureFormatRGBA32Uint, TextureFormatRGBA32Sint, TextureFormatRGBA32Float,
		TextureFormatRGB10A2Uint, TextureFormatRGB10A2Unorm, TextureFormatRG11B10Ufloat:
		return 4, true
	}
	return 0, false
}
