// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpubridge

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/wgtypes"
)

func TestFormatRoundTrip(t *testing.T) {
	mapped := 0
	for _, f := range wgtypes.AllTextureFormats() {
		g, ok := FormatToGPU(f)
		if !ok {
			continue
		}
		mapped++
		back, ok := FormatFromGPU(g)
		if !ok || back != f {
			t.Errorf("FormatFromGPU(FormatToGPU(%v)) = (%v, %v)", f, back, ok)
		}
	}
	// Every gputypes format from R8Unorm to ASTC12x12UnormSrgb is covered.
	want := int(gputypes.TextureFormatASTC12x12UnormSrgb)
	if mapped != want {
		t.Errorf("mapped %d formats, want %d", mapped, want)
	}
}

func TestFormatToGPU(t *testing.T) {
	tests := []struct {
		in   wgtypes.TextureFormat
		want gputypes.TextureFormat
		ok   bool
	}{
		{wgtypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatRGBA8UnormSrgb, true},
		{wgtypes.TextureFormatDepth24PlusStencil8, gputypes.TextureFormatDepth24PlusStencil8, true},
		{wgtypes.TextureFormatEACRG11Snorm, gputypes.TextureFormatEACRG11Snorm, true},
		{wgtypes.ASTC(wgtypes.AstcBlock4x4, wgtypes.AstcChannelUnorm), gputypes.TextureFormatASTC4x4Unorm, true},
		{wgtypes.ASTC(wgtypes.AstcBlock8x5, wgtypes.AstcChannelUnormSrgb), gputypes.TextureFormatASTC8x5UnormSrgb, true},
		{wgtypes.ASTC(wgtypes.AstcBlock12x12, wgtypes.AstcChannelUnormSrgb), gputypes.TextureFormatASTC12x12UnormSrgb, true},
		{wgtypes.ASTC(wgtypes.AstcBlock6x6, wgtypes.AstcChannelHdr), gputypes.TextureFormatUndefined, false},
		{wgtypes.TextureFormatNV12, gputypes.TextureFormatUndefined, false},
		{0, gputypes.TextureFormatUndefined, false},
	}
	for _, tt := range tests {
		got, ok := FormatToGPU(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatToGPU(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := FormatFromGPU(gputypes.TextureFormatUndefined); ok {
		t.Error("FormatFromGPU(Undefined) ok = true")
	}
}

func TestAspectConversion(t *testing.T) {
	for _, a := range []wgtypes.TextureAspect{
		wgtypes.TextureAspectAll, wgtypes.TextureAspectStencilOnly, wgtypes.TextureAspectDepthOnly,
	} {
		g, ok := AspectToGPU(a)
		if !ok {
			t.Errorf("AspectToGPU(%v) ok = false", a)
			continue
		}
		back, ok := AspectFromGPU(g)
		if !ok || back == nil || *back != a {
			t.Errorf("AspectFromGPU(%v) = (%v, %v), want %v", g, back, ok, a)
		}
	}
	if _, ok := AspectToGPU(wgtypes.TextureAspectPlane1); ok {
		t.Error("AspectToGPU(Plane1) ok = true")
	}
	if a, ok := AspectFromGPU(gputypes.TextureAspectUndefined); !ok || a != nil {
		t.Errorf("AspectFromGPU(Undefined) = (%v, %v), want (nil, true)", a, ok)
	}
}

func TestAspectFromGPUFeedsSampleType(t *testing.T) {
	aspect, _ := AspectFromGPU(gputypes.TextureAspectUndefined)
	if _, ok := wgtypes.TextureFormatDepth32FloatStencil8.SampleType(aspect, nil); ok {
		t.Error("combined format with undefined gputypes aspect classified")
	}
	aspect, _ = AspectFromGPU(gputypes.TextureAspectDepthOnly)
	st, ok := wgtypes.TextureFormatDepth32FloatStencil8.SampleType(aspect, nil)
	if !ok || SampleTypeToGPU(st) != gputypes.TextureSampleTypeDepth {
		t.Errorf("SampleType(DepthOnly) = (%v, %v), want depth", st, ok)
	}
}

func TestSampleTypeConversion(t *testing.T) {
	tests := []struct {
		wg  wgtypes.TextureSampleType
		gpu gputypes.TextureSampleType
	}{
		{wgtypes.SampleTypeFilterableFloat, gputypes.TextureSampleTypeFloat},
		{wgtypes.SampleTypeUnfilterableFloat, gputypes.TextureSampleTypeUnfilterableFloat},
		{wgtypes.SampleTypeDepth, gputypes.TextureSampleTypeDepth},
		{wgtypes.SampleTypeSint, gputypes.TextureSampleTypeSint},
		{wgtypes.SampleTypeUint, gputypes.TextureSampleTypeUint},
	}
	for _, tt := range tests {
		if got := SampleTypeToGPU(tt.wg); got != tt.gpu {
			t.Errorf("SampleTypeToGPU(%v) = %v, want %v", tt.wg, got, tt.gpu)
		}
		if got, ok := SampleTypeFromGPU(tt.gpu); !ok || got != tt.wg {
			t.Errorf("SampleTypeFromGPU(%v) = (%v, %v), want %v", tt.gpu, got, ok, tt.wg)
		}
	}
	if _, ok := SampleTypeFromGPU(gputypes.TextureSampleTypeUndefined); ok {
		t.Error("SampleTypeFromGPU(Undefined) ok = true")
	}
}

func TestUsagesConversion(t *testing.T) {
	in := wgtypes.TextureUsagesAll
	g := UsagesToGPU(in)
	if g != gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst|gputypes.TextureUsageTextureBinding|
		gputypes.TextureUsageStorageBinding|gputypes.TextureUsageRenderAttachment {
		t.Errorf("UsagesToGPU(all) = %#x", uint64(g))
	}
	if back := UsagesFromGPU(g); back != in {
		t.Errorf("UsagesFromGPU() = %v, want %v", back, in)
	}
	if got := UsagesToGPU(wgtypes.TextureUsageCopyDst | 1<<20); got != gputypes.TextureUsageCopyDst {
		t.Errorf("UsagesToGPU() kept unknown bits: %#x", uint64(got))
	}
}

func TestFeaturesConversion(t *testing.T) {
	in := wgtypes.FeatureTextureCompressionBC | wgtypes.FeatureFloat32Filterable |
		wgtypes.FeatureShaderF64 | wgtypes.FeatureTextureFormatNV12
	g, unmapped := FeaturesToGPU(in)
	if unmapped != wgtypes.FeatureTextureFormatNV12 {
		t.Errorf("FeaturesToGPU() unmapped = %v, want texture-format-nv12", unmapped)
	}
	if !g.Contains(gputypes.FeatureTextureCompressionBC) || !g.Contains(gputypes.FeatureShaderFloat64) {
		t.Errorf("FeaturesToGPU() = %#x", uint64(g))
	}
	if back := FeaturesFromGPU(g); back != in.Difference(unmapped) {
		t.Errorf("FeaturesFromGPU() = %v, want %v", back, in.Difference(unmapped))
	}
}

func TestFeatureBitsDiffer(t *testing.T) {
	// The two packages number their features differently.
	var g gputypes.Features
	g.Insert(gputypes.FeatureFloat32Filterable)
	got := FeaturesFromGPU(g)
	if got != wgtypes.FeatureFloat32Filterable {
		t.Errorf("FeaturesFromGPU(float32-filterable) = %v", got)
	}
	caps := wgtypes.TextureFormatR32Float.GuaranteedFormatFeatures(got)
	if !caps.Flags.Contains(wgtypes.FormatFeatureFilterable) {
		t.Error("r32float not filterable with adapter float32-filterable")
	}
}

func TestLimitsConversion(t *testing.T) {
	if got := LimitsFromGPU(gputypes.DefaultLimits()); got != wgtypes.DefaultLimits() {
		t.Errorf("LimitsFromGPU(DefaultLimits) = %+v, want wgtypes.DefaultLimits()", got)
	}
	if got := LimitsToGPU(wgtypes.DefaultLimits()); got != gputypes.DefaultLimits() {
		t.Errorf("LimitsToGPU(DefaultLimits) = %+v, want gputypes.DefaultLimits()", got)
	}

	down := LimitsFromGPU(gputypes.DownlevelLimits())
	if !down.CheckLimits(wgtypes.DownlevelLimits()) {
		t.Error("gputypes downlevel limits exceed wgtypes downlevel limits")
	}

	huge := gputypes.DefaultLimits()
	huge.MaxStorageBufferBindingSize = 1 << 40
	if got := LimitsFromGPU(huge).MaxStorageBufferBindingSize; got != math.MaxUint32 {
		t.Errorf("MaxStorageBufferBindingSize = %d, want saturation at MaxUint32", got)
	}
}
