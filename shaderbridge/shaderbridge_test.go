// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaderbridge

import (
	"errors"
	"testing"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/wgtypes"
)

func TestStorageFormatRoundTrip(t *testing.T) {
	for _, f := range wgtypes.AllTextureFormats() {
		sf, ok := StorageFormat(f)
		if !ok {
			continue
		}
		back, ok := TextureFormatFromStorage(sf)
		if !ok || back != f {
			t.Errorf("TextureFormatFromStorage(StorageFormat(%v)) = (%v, %v)", f, back, ok)
		}
	}
	for _, sf := range []ir.StorageFormat{ir.StorageFormatR64Uint, ir.StorageFormatR64Sint, ir.StorageFormatUnknown} {
		if f, ok := TextureFormatFromStorage(sf); ok {
			t.Errorf("TextureFormatFromStorage(%d) = %v, want no format", sf, f)
		}
	}
	for _, f := range []wgtypes.TextureFormat{
		wgtypes.TextureFormatRGBA8UnormSrgb, wgtypes.TextureFormatDepth32Float,
		wgtypes.TextureFormatBC1RGBAUnorm, wgtypes.TextureFormatNV12,
	} {
		if _, ok := StorageFormat(f); ok {
			t.Errorf("StorageFormat(%v) ok = true", f)
		}
	}
}

// The scalar kind naga derives from a storage format must match the sample
// type of the texture format.
func TestStorageScalarKindMatchesSampleType(t *testing.T) {
	all := wgtypes.FeaturesAll()
	for _, p := range storagePairs {
		st, ok := p.format.SampleType(nil, &all)
		if !ok {
			t.Errorf("%v.SampleType() ok = false", p.format)
			continue
		}
		if got, want := p.storage.ScalarKind(), ScalarKind(st); got != want {
			t.Errorf("%v: storage scalar kind %d, sample type %v gives %d", p.format, got, st, want)
		}
	}
}

func TestScalarKindAndImageClass(t *testing.T) {
	tests := []struct {
		st    wgtypes.TextureSampleType
		kind  ir.ScalarKind
		class ir.ImageClass
	}{
		{wgtypes.SampleTypeFilterableFloat, ir.ScalarFloat, ir.ImageClassSampled},
		{wgtypes.SampleTypeUnfilterableFloat, ir.ScalarFloat, ir.ImageClassSampled},
		{wgtypes.SampleTypeDepth, ir.ScalarFloat, ir.ImageClassDepth},
		{wgtypes.SampleTypeSint, ir.ScalarSint, ir.ImageClassSampled},
		{wgtypes.SampleTypeUint, ir.ScalarUint, ir.ImageClassSampled},
	}
	for _, tt := range tests {
		if got := ScalarKind(tt.st); got != tt.kind {
			t.Errorf("ScalarKind(%v) = %d, want %d", tt.st, got, tt.kind)
		}
		if got := ImageClass(tt.st); got != tt.class {
			t.Errorf("ImageClass(%v) = %d, want %d", tt.st, got, tt.class)
		}
	}
}

func TestSampleTypeForImage(t *testing.T) {
	tests := []struct {
		img  ir.ImageType
		want wgtypes.TextureSampleType
		ok   bool
	}{
		{ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassSampled, SampledKind: ir.ScalarFloat}, wgtypes.SampleTypeUnfilterableFloat, true},
		{ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassSampled, SampledKind: ir.ScalarUint}, wgtypes.SampleTypeUint, true},
		{ir.ImageType{Dim: ir.DimCube, Class: ir.ImageClassDepth}, wgtypes.SampleTypeDepth, true},
		{ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassStorage, StorageFormat: ir.StorageFormatRgba8Unorm}, wgtypes.TextureSampleType{}, false},
	}
	for _, tt := range tests {
		got, ok := SampleTypeForImage(tt.img)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SampleTypeForImage(%+v) = (%v, %v), want (%v, %v)", tt.img, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCheckStorageBinding(t *testing.T) {
	tests := []struct {
		name     string
		format   wgtypes.TextureFormat
		access   ir.StorageAccess
		features wgtypes.Features
		want     error
	}{
		{"rgba8unorm write", wgtypes.TextureFormatRGBA8Unorm, ir.StorageAccessWrite, 0, nil},
		{"rgba8unorm read_write", wgtypes.TextureFormatRGBA8Unorm, ir.StorageAccessReadWrite, 0, ErrStorageAccessUnsupported},
		{"r32float read_write", wgtypes.TextureFormatR32Float, ir.StorageAccessReadWrite, 0, nil},
		{"r32uint atomic", wgtypes.TextureFormatR32Uint, ir.StorageAccessAtomic, 0, nil},
		{"r32float atomic", wgtypes.TextureFormatR32Float, ir.StorageAccessAtomic, 0, ErrStorageAccessUnsupported},
		{"r8unorm has no storage usage", wgtypes.TextureFormatR8Unorm, ir.StorageAccessWrite, 0, ErrStorageBindingUnsupported},
		{"bgra8unorm without feature", wgtypes.TextureFormatBGRA8Unorm, ir.StorageAccessWrite, 0, ErrStorageBindingUnsupported},
		{"bgra8unorm with feature", wgtypes.TextureFormatBGRA8Unorm, ir.StorageAccessWrite, wgtypes.FeatureBGRA8UnormStorage, nil},
		{"srgb is not storage", wgtypes.TextureFormatRGBA8UnormSrgb, ir.StorageAccessRead, 0, ErrNotStorageFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStorageBinding(tt.format, tt.access, tt.features)
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckStorageBinding() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckStorageBindingMissingFeature(t *testing.T) {
	err := CheckStorageBinding(wgtypes.TextureFormatR16Unorm, ir.StorageAccessWrite, 0)
	if !wgtypes.IsFeatureError(err) {
		t.Fatalf("CheckStorageBinding(r16unorm) = %v, want feature error", err)
	}
	if err := CheckStorageBinding(wgtypes.TextureFormatR16Unorm, ir.StorageAccessWrite,
		wgtypes.FeatureTextureFormat16BitNorm); err != nil {
		t.Errorf("CheckStorageBinding(r16unorm, 16bit-norm) = %v", err)
	}
}

func TestCheckSampledBinding(t *testing.T) {
	float2D := ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassSampled, SampledKind: ir.ScalarFloat}
	uint2D := ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassSampled, SampledKind: ir.ScalarUint}
	depth2D := ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassDepth}
	storage := ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassStorage, StorageFormat: ir.StorageFormatRgba8Unorm}
	msFloat := float2D
	msFloat.Multisampled = true

	depthOnly := wgtypes.TextureAspectDepthOnly.Ptr()
	stencilOnly := wgtypes.TextureAspectStencilOnly.Ptr()

	tests := []struct {
		name   string
		format wgtypes.TextureFormat
		aspect *wgtypes.TextureAspect
		img    ir.ImageType
		want   error
	}{
		{"rgba8unorm as f32", wgtypes.TextureFormatRGBA8Unorm, nil, float2D, nil},
		{"rgba8uint as f32", wgtypes.TextureFormatRGBA8Uint, nil, float2D, ErrSampleKindMismatch},
		{"rgba8uint as u32", wgtypes.TextureFormatRGBA8Uint, nil, uint2D, nil},
		{"depth32float as depth", wgtypes.TextureFormatDepth32Float, nil, depth2D, nil},
		{"depth32float as f32", wgtypes.TextureFormatDepth32Float, nil, float2D, nil},
		{"rgba8unorm as depth", wgtypes.TextureFormatRGBA8Unorm, nil, depth2D, ErrImageClassMismatch},
		{"combined without aspect", wgtypes.TextureFormatDepth24PlusStencil8, nil, depth2D, ErrNoSampleType},
		{"combined depth aspect", wgtypes.TextureFormatDepth24PlusStencil8, depthOnly, depth2D, nil},
		{"combined stencil aspect", wgtypes.TextureFormatDepth24PlusStencil8, stencilOnly, uint2D, nil},
		{"storage image", wgtypes.TextureFormatRGBA8Unorm, nil, storage, ErrImageClassMismatch},
		{"multisampled rgba8unorm", wgtypes.TextureFormatRGBA8Unorm, nil, msFloat, nil},
		{"multisampled rg32float", wgtypes.TextureFormatRG32Float, nil, msFloat, ErrMultisampleUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSampledBinding(tt.format, tt.aspect, nil, tt.img)
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckSampledBinding() = %v, want %v", err, tt.want)
			}
		})
	}
}
