// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAllTextureFormatsCount(t *testing.T) {
	all := AllTextureFormats()
	want := int(textureFormatEnd) - 1 + 14*3
	if len(all) != want {
		t.Fatalf("len(AllTextureFormats()) = %d, want %d", len(all), want)
	}

	seen := make(map[TextureFormat]bool, len(all))
	for _, f := range all {
		if seen[f] {
			t.Errorf("format %v listed twice", f)
		}
		seen[f] = true
		if !f.IsValid() {
			t.Errorf("%v.IsValid() = false", f)
		}
	}
}

func TestTextureFormatNamesComplete(t *testing.T) {
	for f := TextureFormat(1); f < textureFormatEnd; f++ {
		if formatNames[f] == "" {
			t.Errorf("format %d has no name", uint32(f))
		}
	}
	if len(formatsByName) != int(textureFormatEnd)-1 {
		t.Errorf("formatsByName has %d entries, want %d (duplicate names?)",
			len(formatsByName), int(textureFormatEnd)-1)
	}
}

func TestTextureFormatRoundTrip(t *testing.T) {
	for _, f := range AllTextureFormats() {
		text, err := f.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() error = %v", f, err)
			continue
		}
		var got TextureFormat
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) error = %v", text, err)
			continue
		}
		if got != f {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, f)
		}
	}
}

func TestTextureFormatString(t *testing.T) {
	tests := []struct {
		format TextureFormat
		want   string
	}{
		{TextureFormatR8Unorm, "r8unorm"},
		{TextureFormatRGBA8UnormSrgb, "rgba8unorm-srgb"},
		{TextureFormatDepth24PlusStencil8, "depth24plus-stencil8"},
		{TextureFormatDepth32FloatStencil8, "depth32float-stencil8"},
		{TextureFormatRGB9E5Ufloat, "rgb9e5ufloat"},
		{TextureFormatBC6HRGBUfloat, "bc6h-rgb-ufloat"},
		{TextureFormatETC2RGB8A1UnormSrgb, "etc2-rgb8a1unorm-srgb"},
		{TextureFormatEACRG11Snorm, "eac-rg11snorm"},
		{TextureFormatNV12, "nv12"},
		{ASTC(AstcBlock4x4, AstcChannelUnorm), "astc-4x4-unorm"},
		{ASTC(AstcBlock8x5, AstcChannelUnormSrgb), "astc-8x5-unorm-srgb"},
		{ASTC(AstcBlock12x12, AstcChannelHdr), "astc-12x12-hdr"},
		{0, "TextureFormat(0x0)"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseTextureFormatRejects(t *testing.T) {
	bad := []string{
		"",
		"R8Unorm",
		"r8unorm ",
		"rgba8unorm_srgb",
		"depth24plus_stencil8",
		"astc",
		"astc-4x4",
		"astc-4x4-",
		"astc-3x3-unorm",
		"astc-4x4-srgb",
		"astc-4x4-unorm-",
		"ASTC-4x4-unorm",
		"astc-12x12-hdr-",
	}
	for _, s := range bad {
		_, err := ParseTextureFormat(s)
		if err == nil {
			t.Errorf("ParseTextureFormat(%q) succeeded, want error", s)
			continue
		}
		if !errors.Is(err, ErrUnknownTextureFormat) {
			t.Errorf("ParseTextureFormat(%q) error = %v, want ErrUnknownTextureFormat", s, err)
		}
	}
}

func TestTextureFormatMarshalInvalid(t *testing.T) {
	invalid := []TextureFormat{0, textureFormatEnd, astcTag | 0xF0, astcTag | 0x03}
	for _, f := range invalid {
		if f.IsValid() {
			t.Errorf("%#x.IsValid() = true, want false", uint32(f))
		}
		if _, err := f.MarshalText(); !errors.Is(err, ErrUnknownTextureFormat) {
			t.Errorf("%#x.MarshalText() error = %v, want ErrUnknownTextureFormat", uint32(f), err)
		}
	}
}

func TestTextureFormatJSON(t *testing.T) {
	type desc struct {
		Format TextureFormat   `json:"format"`
		Views  []TextureFormat `json:"views"`
	}
	in := desc{
		Format: TextureFormatBGRA8Unorm,
		Views:  []TextureFormat{TextureFormatBGRA8UnormSrgb, ASTC(AstcBlock10x6, AstcChannelHdr)},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"format":"bgra8unorm","views":["bgra8unorm-srgb","astc-10x6-hdr"]}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var out desc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out.Format != in.Format || len(out.Views) != 2 || out.Views[1] != in.Views[1] {
		t.Errorf("json.Unmarshal() = %+v, want %+v", out, in)
	}

	if err := json.Unmarshal([]byte(`{"format":"bgra8"}`), &out); err == nil {
		t.Error("json.Unmarshal() of unknown format succeeded, want error")
	}
}

func TestASTCUnpack(t *testing.T) {
	for b := AstcBlock(0); b < astcBlockCount; b++ {
		for c := AstcChannel(0); c < astcChannelCount; c++ {
			f := ASTC(b, c)
			gb, gc, ok := f.ASTC()
			if !ok || gb != b || gc != c {
				t.Errorf("ASTC(%v, %v).ASTC() = %v, %v, %v", b, c, gb, gc, ok)
			}
		}
	}
	if _, _, ok := TextureFormatBC1RGBAUnorm.ASTC(); ok {
		t.Error("BC1.ASTC() ok = true, want false")
	}
}

func TestASTCOutOfRange(t *testing.T) {
	tests := []struct {
		block   AstcBlock
		channel AstcChannel
	}{
		{astcBlockCount, AstcChannelUnorm},
		{AstcBlock(17), AstcChannelUnorm},
		{AstcBlock4x4, astcChannelCount},
		{AstcBlock4x4, AstcChannel(16)},
		{AstcBlock(255), AstcChannel(255)},
	}
	for _, tt := range tests {
		f := ASTC(tt.block, tt.channel)
		if f.IsValid() {
			t.Errorf("ASTC(%d, %d) = %v, IsValid() = true, want false", tt.block, tt.channel, f)
		}
		if _, _, ok := f.ASTC(); ok {
			t.Errorf("ASTC(%d, %d).ASTC() ok = true, want false", tt.block, tt.channel)
		}
		if _, err := f.MarshalText(); err == nil {
			t.Errorf("ASTC(%d, %d).MarshalText() error = nil", tt.block, tt.channel)
		}
	}
}

func TestAstcBlockDimensions(t *testing.T) {
	tests := []struct {
		block AstcBlock
		w, h  uint32
	}{
		{AstcBlock4x4, 4, 4},
		{AstcBlock5x4, 5, 4},
		{AstcBlock8x5, 8, 5},
		{AstcBlock10x10, 10, 10},
		{AstcBlock12x10, 12, 10},
		{AstcBlock12x12, 12, 12},
	}
	for _, tt := range tests {
		w, h := tt.block.Dimensions()
		if w != tt.w || h != tt.h {
			t.Errorf("%v.Dimensions() = (%d, %d), want (%d, %d)", tt.block, w, h, tt.w, tt.h)
		}
	}
}
