// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TextureUsages is a set of ways a texture may be used.
type TextureUsages uint32

// Texture usages.
const (
	TextureUsageCopySrc TextureUsages = 1 << iota
	TextureUsageCopyDst
	TextureUsageTextureBinding
	TextureUsageStorageBinding
	TextureUsageRenderAttachment
)

// TextureUsagesAll is the set of every known usage.
const TextureUsagesAll = TextureUsageCopySrc | TextureUsageCopyDst | TextureUsageTextureBinding |
	TextureUsageStorageBinding | TextureUsageRenderAttachment

var usageNames = [...]string{
	"copy-src", "copy-dst", "texture-binding", "storage-binding", "render-attachment",
}

// Contains reports whether every usage in other is in u.
func (u TextureUsages) Contains(other TextureUsages) bool { return u&other == other }

// ContainsUnknownBits reports whether u has bits that name no known usage.
func (u TextureUsages) ContainsUnknownBits() bool { return u&^TextureUsagesAll != 0 }

// String returns the usage names joined with "|".
func (u TextureUsages) String() string {
	return flagString(uint64(u), uint64(TextureUsagesAll), usageNames[:])
}

// MarshalJSON encodes the set as its raw unsigned integer.
func (u TextureUsages) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(u), 10), nil
}

// UnmarshalJSON decodes a raw unsigned integer. Unknown bits are kept.
func (u *TextureUsages) UnmarshalJSON(data []byte) error {
	var v uint32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("wgtypes: decode texture usages: %w", err)
	}
	*u = TextureUsages(v)
	return nil
}

// TextureFormatFeatureFlags describes what a format supports beyond its
// allowed usages. The flags are derived from the format and never set
// directly by callers.
type TextureFormatFeatureFlags uint32

// Format feature flags.
const (
	// FormatFeatureFilterable allows filtering samplers on the format.
	FormatFeatureFilterable TextureFormatFeatureFlags = 1 << iota
	FormatFeatureMultisampleX2
	FormatFeatureMultisampleX4
	FormatFeatureMultisampleX8
	FormatFeatureMultisampleX16
	// FormatFeatureMultisampleResolve allows the format as a resolve target.
	FormatFeatureMultisampleResolve
	// FormatFeatureStorageReadWrite allows read-write storage access.
	FormatFeatureStorageReadWrite
	// FormatFeatureBlendable allows blending when used as a render attachment.
	FormatFeatureBlendable
)

// FormatFeatureFlagsAll is the set of every known flag.
const FormatFeatureFlagsAll = FormatFeatureFilterable | FormatFeatureMultisampleX2 |
	FormatFeatureMultisampleX4 | FormatFeatureMultisampleX8 | FormatFeatureMultisampleX16 |
	FormatFeatureMultisampleResolve | FormatFeatureStorageReadWrite | FormatFeatureBlendable

var formatFeatureNames = [...]string{
	"filterable", "multisample-x2", "multisample-x4", "multisample-x8", "multisample-x16",
	"multisample-resolve", "storage-read-write", "blendable",
}

// Contains reports whether every flag in other is in f.
func (f TextureFormatFeatureFlags) Contains(other TextureFormatFeatureFlags) bool {
	return f&other == other
}

// ContainsUnknownBits reports whether f has bits that name no known flag.
func (f TextureFormatFeatureFlags) ContainsUnknownBits() bool {
	return f&^FormatFeatureFlagsAll != 0
}

// SampleCountSupported reports whether textures of the format may use n
// samples. A count of 1 is always supported.
func (f TextureFormatFeatureFlags) SampleCountSupported(n uint32) bool {
	switch n {
	case 1:
		return true
	case 2:
		return f.Contains(FormatFeatureMultisampleX2)
	case 4:
		return f.Contains(FormatFeatureMultisampleX4)
	case 8:
		return f.Contains(FormatFeatureMultisampleX8)
	case 16:
		return f.Contains(FormatFeatureMultisampleX16)
	default:
		return false
	}
}

// SupportedSampleCounts returns every supported sample count in
// ascending order, starting with 1.
func (f TextureFormatFeatureFlags) SupportedSampleCounts() []uint32 {
	counts := []uint32{1}
	for _, n := range [...]uint32{2, 4, 8, 16} {
		if f.SampleCountSupported(n) {
			counts = append(counts, n)
		}
	}
	return counts
}

// String returns the flag names joined with "|".
func (f TextureFormatFeatureFlags) String() string {
	return flagString(uint64(f), uint64(FormatFeatureFlagsAll), formatFeatureNames[:])
}

// MarshalJSON encodes the set as its raw unsigned integer.
func (f TextureFormatFeatureFlags) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(f), 10), nil
}

// UnmarshalJSON decodes a raw unsigned integer. Unknown bits are kept.
func (f *TextureFormatFeatureFlags) UnmarshalJSON(data []byte) error {
	var v uint32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("wgtypes: decode format feature flags: %w", err)
	}
	*f = TextureFormatFeatureFlags(v)
	return nil
}

// flagString formats a bitset whose bit i is named names[i].
func flagString(v, known uint64, names []string) string {
	if v == 0 {
		return "(none)"
	}
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if unknown := v &^ known; unknown != 0 {
		parts = append(parts, fmt.Sprintf("%#x", unknown))
	}
	return strings.Join(parts, "|")
}

// TextureFormatFeatures is what a format supports: the usages it may be
// created with and its feature flags.
type TextureFormatFeatures struct {
	AllowedUsages TextureUsages             `json:"allowedUsages"`
	Flags         TextureFormatFeatureFlags `json:"flags"`
}

// Multisample tiers.
const (
	msaaNone    TextureFormatFeatureFlags = 0
	msaa        TextureFormatFeatureFlags = FormatFeatureMultisampleX4
	msaaResolve TextureFormatFeatureFlags = msaa | FormatFeatureMultisampleResolve
)

// Usage tiers.
const (
	usageBasic      = TextureUsageCopySrc | TextureUsageCopyDst | TextureUsageTextureBinding
	usageAttachment = usageBasic | TextureUsageRenderAttachment
	usageStorage    = usageBasic | TextureUsageStorageBinding
	usageBinding    = TextureUsageTextureBinding
	usageAll        = TextureUsagesAll
)

// GuaranteedFormatFeatures returns the usages and flags every device
// supports for f once the given features are enabled.
//
// FormatFeatureFilterable follows SampleType with the enabled features,
// while FormatFeatureBlendable follows SampleType with no features at all,
// so FeatureFloat32Filterable makes the 32-bit float formats filterable
// without making them blendable.
func (f TextureFormat) GuaranteedFormatFeatures(features Features) TextureFormatFeatures {
	rg11b10f := usageBasic
	if features.Contains(FeatureRG11B10UfloatRenderable) {
		rg11b10f = usageAttachment
	}
	bgra8unorm := usageAttachment
	if features.Contains(FeatureBGRA8UnormStorage) {
		bgra8unorm |= TextureUsageStorageBinding
	}

	var flags TextureFormatFeatureFlags
	var usages TextureUsages

	switch f {
	case TextureFormatR8Unorm:
		flags, usages = msaaResolve, usageAttachment
	case TextureFormatR8Snorm:
		flags, usages = msaaNone, usageBasic
	case TextureFormatR8Uint, TextureFormatR8Sint:
		flags, usages = msaa, usageAttachment

	case TextureFormatR16Uint, TextureFormatR16Sint:
		flags, usages = msaa, usageAttachment
	case TextureFormatR16Float:
		flags, usages = msaaResolve, usageAttachment

	case TextureFormatRG8Unorm:
		flags, usages = msaaResolve, usageAttachment
	case TextureFormatRG8Snorm:
		flags, usages = msaaNone, usageBasic
	case TextureFormatRG8Uint, TextureFormatRG8Sint:
		flags, usages = msaa, usageAttachment

	case TextureFormatR32Uint, TextureFormatR32Sint:
		flags, usages = msaaNone, usageAll
	case TextureFormatR32Float:
		flags, usages = msaa, usageAll

	case TextureFormatRG16Uint, TextureFormatRG16Sint:
		flags, usages = msaa, usageAttachment
	case TextureFormatRG16Float:
		flags, usages = msaaResolve, usageAttachment

	case TextureFormatRGBA8Unorm:
		flags, usages = msaaResolve, usageAll
	case TextureFormatRGBA8UnormSrgb:
		flags, usages = msaaResolve, usageAttachment
	case TextureFormatRGBA8Snorm:
		flags, usages = msaaNone, usageStorage
	case TextureFormatRGBA8Uint, TextureFormatRGBA8Sint:
		flags, usages = msaa, usageAll

	case TextureFormatBGRA8Unorm:
		flags, usages = msaaResolve, bgra8unorm
	case TextureFormatBGRA8UnormSrgb:
		flags, usages = msaaResolve, usageAttachment

	case TextureFormatRGB10A2Uint:
		flags, usages = msaa, usageAttachment
	case TextureFormatRGB10A2Unorm:
		flags, usages = msaaResolve, usageAttachment
	case TextureFormatRG11B10Ufloat:
		flags, usages = msaa, rg11b10f

	case TextureFormatRG32Uint, TextureFormatRG32Sint, TextureFormatRG32Float:
		flags, usages = msaaNone, usageAll

	case TextureFormatRGBA16Uint, TextureFormatRGBA16Sint:
		flags, usages = msaa, usageAll
	case TextureFormatRGBA16Float:
		flags, usages = msaaResolve, usageAll

	case TextureFormatRGBA32Uint, TextureFormatRGBA32Sint, TextureFormatRGBA32Float:
		flags, usages = msaaNone, usageAll

	case TextureFormatStencil8, TextureFormatDepth16Unorm, TextureFormatDepth24Plus,
		TextureFormatDepth24PlusStencil8, TextureFormatDepth32Float,
		TextureFormatDepth32FloatStencil8:
		flags, usages = msaa, usageAttachment

	case TextureFormatNV12:
		flags, usages = msaaNone, usageBinding

	case TextureFormatR16Unorm, TextureFormatR16Snorm, TextureFormatRG16Unorm, TextureFormatRG16Snorm,
		TextureFormatRGBA16Unorm, TextureFormatRGBA16Snorm:
		flags, usages = msaa, usageStorage

	case TextureFormatRGB9E5Ufloat:
		flags, usages = msaaNone, usageBasic

	default:
		if f.IsCompressed() {
			flags, usages = msaaNone, usageBasic
		}
	}

	if st, ok := f.SampleType(nil, &features); ok && st.IsFilterableFloat() {
		flags |= FormatFeatureFilterable
	}
	if st, ok := f.SampleType(nil, nil); ok && st.IsFilterableFloat() {
		flags |= FormatFeatureBlendable
	}

	return TextureFormatFeatures{AllowedUsages: usages, Flags: flags}
}
