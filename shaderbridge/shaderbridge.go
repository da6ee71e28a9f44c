// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shaderbridge relates wgtypes texture formats to the image types
// of a naga shader module (github.com/gogpu/naga/ir).
//
// It answers whether a texture of a given format may be bound to a shader
// image declared as texture_2d<f32>, texture_depth_2d or
// texture_storage_2d<rgba8unorm, write>, using the same sample-type and
// guaranteed-feature rules as the wgtypes package.
package shaderbridge

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/wgtypes"
)

// Binding errors.
var (
	// ErrNotStorageFormat is returned when a format has no WGSL storage
	// texel format.
	ErrNotStorageFormat = errors.New("shaderbridge: format is not a storage texel format")

	// ErrStorageBindingUnsupported is returned when a format does not allow
	// TextureUsageStorageBinding under the enabled features.
	ErrStorageBindingUnsupported = errors.New("shaderbridge: storage binding not supported")

	// ErrStorageAccessUnsupported is returned when a format does not allow
	// the requested storage access mode.
	ErrStorageAccessUnsupported = errors.New("shaderbridge: storage access mode not supported")

	// ErrNoSampleType is returned when a format and aspect have no sample
	// type, as for a combined depth-stencil format without an aspect.
	ErrNoSampleType = errors.New("shaderbridge: format has no sample type for aspect")

	// ErrSampleKindMismatch is returned when the shader samples a scalar
	// kind the format does not produce.
	ErrSampleKindMismatch = errors.New("shaderbridge: sample kind mismatch")

	// ErrImageClassMismatch is returned when the image class cannot bind a
	// sampled texture of the format.
	ErrImageClassMismatch = errors.New("shaderbridge: image class mismatch")

	// ErrMultisampleUnsupported is returned when a multisampled image is
	// bound to a format without multisample support.
	ErrMultisampleUnsupported = errors.New("shaderbridge: multisampling not supported")
)

var storagePairs = [...]struct {
	format  wgtypes.TextureFormat
	storage ir.StorageFormat
}{
	{wgtypes.TextureFormatR8Unorm, ir.StorageFormatR8Unorm},
	{wgtypes.TextureFormatR8Snorm, ir.StorageFormatR8Snorm},
	{wgtypes.TextureFormatR8Uint, ir.StorageFormatR8Uint},
	{wgtypes.TextureFormatR8Sint, ir.StorageFormatR8Sint},
	{wgtypes.TextureFormatR16Uint, ir.StorageFormatR16Uint},
	{wgtypes.TextureFormatR16Sint, ir.StorageFormatR16Sint},
	{wgtypes.TextureFormatR16Float, ir.StorageFormatR16Float},
	{wgtypes.TextureFormatRG8Unorm, ir.StorageFormatRg8Unorm},
	{wgtypes.TextureFormatRG8Snorm, ir.StorageFormatRg8Snorm},
	{wgtypes.TextureFormatRG8Uint, ir.StorageFormatRg8Uint},
	{wgtypes.TextureFormatRG8Sint, ir.StorageFormatRg8Sint},
	{wgtypes.TextureFormatR32Uint, ir.StorageFormatR32Uint},
	{wgtypes.TextureFormatR32Sint, ir.StorageFormatR32Sint},
	{wgtypes.TextureFormatR32Float, ir.StorageFormatR32Float},
	{wgtypes.TextureFormatRG16Uint, ir.StorageFormatRg16Uint},
	{wgtypes.TextureFormatRG16Sint, ir.StorageFormatRg16Sint},
	{wgtypes.TextureFormatRG16Float, ir.StorageFormatRg16Float},
	{wgtypes.TextureFormatRGBA8Unorm, ir.StorageFormatRgba8Unorm},
	{wgtypes.TextureFormatRGBA8Snorm, ir.StorageFormatRgba8Snorm},
	{wgtypes.TextureFormatRGBA8Uint, ir.StorageFormatRgba8Uint},
	{wgtypes.TextureFormatRGBA8Sint, ir.StorageFormatRgba8Sint},
	{wgtypes.TextureFormatBGRA8Unorm, ir.StorageFormatBgra8Unorm},
	{wgtypes.TextureFormatRGB10A2Uint, ir.StorageFormatRgb10a2Uint},
	{wgtypes.TextureFormatRGB10A2Unorm, ir.StorageFormatRgb10a2Unorm},
	{wgtypes.TextureFormatRG11B10Ufloat, ir.StorageFormatRg11b10Ufloat},
	{wgtypes.TextureFormatRG32Uint, ir.StorageFormatRg32Uint},
	{wgtypes.TextureFormatRG32Sint, ir.StorageFormatRg32Sint},
	{wgtypes.TextureFormatRG32Float, ir.StorageFormatRg32Float},
	{wgtypes.TextureFormatRGBA16Uint, ir.StorageFormatRgba16Uint},
	{wgtypes.TextureFormatRGBA16Sint, ir.StorageFormatRgba16Sint},
	{wgtypes.TextureFormatRGBA16Float, ir.StorageFormatRgba16Float},
	{wgtypes.TextureFormatRGBA32Uint, ir.StorageFormatRgba32Uint},
	{wgtypes.TextureFormatRGBA32Sint, ir.StorageFormatRgba32Sint},
	{wgtypes.TextureFormatRGBA32Float, ir.StorageFormatRgba32Float},
	{wgtypes.TextureFormatR16Unorm, ir.StorageFormatR16Unorm},
	{wgtypes.TextureFormatR16Snorm, ir.StorageFormatR16Snorm},
	{wgtypes.TextureFormatRG16Unorm, ir.StorageFormatRg16Unorm},
	{wgtypes.TextureFormatRG16Snorm, ir.StorageFormatRg16Snorm},
	{wgtypes.TextureFormatRGBA16Unorm, ir.StorageFormatRgba16Unorm},
	{wgtypes.TextureFormatRGBA16Snorm, ir.StorageFormatRgba16Snorm},
}

var (
	toStorage   = make(map[wgtypes.TextureFormat]ir.StorageFormat, len(storagePairs))
	fromStorage = make(map[ir.StorageFormat]wgtypes.TextureFormat, len(storagePairs))
)

func init() {
	for _, p := range storagePairs {
		toStorage[p.format] = p.storage
		fromStorage[p.storage] = p.format
	}
}

// StorageFormat returns the naga storage texel format of f.
func StorageFormat(f wgtypes.TextureFormat) (ir.StorageFormat, bool) {
	sf, ok := toStorage[f]
	return sf, ok
}

// TextureFormatFromStorage returns the texture format of a naga storage
// texel format. The 64-bit formats have no texture format.
func TextureFormatFromStorage(sf ir.StorageFormat) (wgtypes.TextureFormat, bool) {
	f, ok := fromStorage[sf]
	return f, ok
}

// ScalarKind returns the scalar kind a shader reads from a texture of the
// given sample type. Depth reads as float.
func ScalarKind(st wgtypes.TextureSampleType) ir.ScalarKind {
	switch st.Kind {
	case wgtypes.SampleKindSint:
		return ir.ScalarSint
	case wgtypes.SampleKindUint:
		return ir.ScalarUint
	default:
		return ir.ScalarFloat
	}
}

// ImageClass returns the image class a shader declares for the sample
// type: depth textures are ImageClassDepth, everything else ImageClassSampled.
func ImageClass(st wgtypes.TextureSampleType) ir.ImageClass {
	if st.Kind == wgtypes.SampleKindDepth {
		return ir.ImageClassDepth
	}
	return ir.ImageClassSampled
}

// SampleTypeForImage returns the sample type a bind group layout needs for
// a sampled or depth image. Float images report unfilterable float, since
// the shader type alone does not say whether a filtering sampler is used.
func SampleTypeForImage(img ir.ImageType) (wgtypes.TextureSampleType, bool) {
	switch img.Class {
	case ir.ImageClassDepth:
		return wgtypes.SampleTypeDepth, true
	case ir.ImageClassSampled:
		switch img.SampledKind {
		case ir.ScalarFloat:
			return wgtypes.SampleTypeUnfilterableFloat, true
		case ir.ScalarSint:
			return wgtypes.SampleTypeSint, true
		case ir.ScalarUint:
			return wgtypes.SampleTypeUint, true
		}
	}
	return wgtypes.TextureSampleType{}, false
}

// CheckStorageBinding reports whether a texture of format f may be bound
// as a storage texture with the given access under the enabled features.
//
// Read-write access is guaranteed for the single-channel 32-bit formats
// and otherwise needs FormatFeatureStorageReadWrite. Atomic access is only
// available on R32Uint and R32Sint.
func CheckStorageBinding(f wgtypes.TextureFormat, access ir.StorageAccess, features wgtypes.Features) error {
	if _, ok := StorageFormat(f); !ok {
		return fmt.Errorf("%w: %v", ErrNotStorageFormat, f)
	}
	if err := f.CheckFeatures(features); err != nil {
		return err
	}
	caps := f.GuaranteedFormatFeatures(features)
	if !caps.AllowedUsages.Contains(wgtypes.TextureUsageStorageBinding) {
		return fmt.Errorf("%w: %v with features %v", ErrStorageBindingUnsupported, f, features)
	}

	switch access {
	case ir.StorageAccessRead, ir.StorageAccessWrite:
		return nil
	case ir.StorageAccessReadWrite:
		if isR32(f) || caps.Flags.Contains(wgtypes.FormatFeatureStorageReadWrite) {
			return nil
		}
	case ir.StorageAccessAtomic:
		if f == wgtypes.TextureFormatR32Uint || f == wgtypes.TextureFormatR32Sint {
			return nil
		}
	}
	return fmt.Errorf("%w: %v access %s", ErrStorageAccessUnsupported, f, accessName(access))
}

// CheckSampledBinding reports whether the given aspect of a texture of
// format f may be bound to the sampled or depth image img.
//
// features is the set of enabled features, or nil; it only matters for
// the filterability of 32-bit float formats and for multisample support.
// Depth formats may also be read through a float image.
func CheckSampledBinding(f wgtypes.TextureFormat, aspect *wgtypes.TextureAspect, features *wgtypes.Features, img ir.ImageType) error {
	st, ok := f.SampleType(aspect, features)
	if !ok {
		return fmt.Errorf("%w: %v aspect %s", ErrNoSampleType, f, aspectName(aspect))
	}

	switch img.Class {
	case ir.ImageClassDepth:
		if st.Kind != wgtypes.SampleKindDepth {
			return fmt.Errorf("%w: depth image with %v (%v)", ErrImageClassMismatch, f, st)
		}
	case ir.ImageClassSampled:
		if want := ScalarKind(st); img.SampledKind != want {
			return fmt.Errorf("%w: shader reads %s, %v produces %v", ErrSampleKindMismatch,
				scalarName(img.SampledKind), f, st)
		}
	default:
		return fmt.Errorf("%w: image class %d is not sampled", ErrImageClassMismatch, img.Class)
	}

	if img.Multisampled {
		var enabled wgtypes.Features
		if features != nil {
			enabled = *features
		}
		if !f.GuaranteedFormatFeatures(enabled).Flags.SampleCountSupported(4) {
			return fmt.Errorf("%w: %v", ErrMultisampleUnsupported, f)
		}
	}
	return nil
}

func isR32(f wgtypes.TextureFormat) bool {
	return f == wgtypes.TextureFormatR32Uint || f == wgtypes.TextureFormatR32Sint ||
		f == wgtypes.TextureFormatR32Float
}

func accessName(a ir.StorageAccess) string {
	switch a {
	case ir.StorageAccessRead:
		return "read"
	case ir.StorageAccessWrite:
		return "write"
	case ir.StorageAccessReadWrite:
		return "read_write"
	case ir.StorageAccessAtomic:
		return "atomic"
	default:
		return fmt.Sprintf("StorageAccess(%d)", uint8(a))
	}
}

func scalarName(k ir.ScalarKind) string {
	switch k {
	case ir.ScalarSint:
		return "i32"
	case ir.ScalarUint:
		return "u32"
	case ir.ScalarFloat:
		return "f32"
	default:
		return fmt.Sprintf("ScalarKind(%d)", uint8(k))
	}
}

func aspectName(a *wgtypes.TextureAspect) string {
	if a == nil {
		return "(none)"
	}
	return a.String()
}
