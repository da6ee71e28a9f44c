// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"fmt"
	"strings"
)

// TextureFormat is the underlying pixel layout of a texture.
//
// Every value except the ASTC family is a plain enumerator. ASTC formats
// are parameterized by block shape and channel encoding; build them with
// [ASTC] and take them apart with [TextureFormat.ASTC]. Both kinds are
// comparable with == and usable as map keys.
//
// The zero value is not a format. Methods on it report "no value".
type TextureFormat uint32

// Uncompressed color formats.
const (
	TextureFormatR8Unorm TextureFormat = iota + 1
	TextureFormatR8Snorm
	TextureFormatR8Uint
	TextureFormatR8Sint

	TextureFormatR16Uint
	TextureFormatR16Sint
	TextureFormatR16Unorm
	TextureFormatR16Snorm
	TextureFormatR16Float
	TextureFormatRG8Unorm
	TextureFormatRG8Snorm
	TextureFormatRG8Uint
	TextureFormatRG8Sint

	TextureFormatR32Uint
	TextureFormatR32Sint
	TextureFormatR32Float
	TextureFormatRG16Uint
	TextureFormatRG16Sint
	TextureFormatRG16Unorm
	TextureFormatRG16Snorm
	TextureFormatRG16Float
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSrgb
	TextureFormatRGBA8Snorm
	TextureFormatRGBA8Uint
	TextureFormatRGBA8Sint
	TextureFormatBGRA8Unorm
	TextureFormatBGRA8UnormSrgb

	// Packed 32-bit formats.
	TextureFormatRGB9E5Ufloat
	TextureFormatRGB10A2Uint
	TextureFormatRGB10A2Unorm
	TextureFormatRG11B10Ufloat

	TextureFormatRG32Uint
	TextureFormatRG32Sint
	TextureFormatRG32Float
	TextureFormatRGBA16Uint
	TextureFormatRGBA16Sint
	TextureFormatRGBA16Unorm
	TextureFormatRGBA16Snorm
	TextureFormatRGBA16Float

	TextureFormatRGBA32Uint
	TextureFormatRGBA32Sint
	TextureFormatRGBA32Float

	// Depth and stencil formats.
	TextureFormatStencil8
	TextureFormatDepth16Unorm
	// TextureFormatDepth24Plus has at least 24 bits of depth; the exact
	// size is backend dependent, so it has no fixed copy size.
	TextureFormatDepth24Plus
	TextureFormatDepth24PlusStencil8
	TextureFormatDepth32Float
	TextureFormatDepth32FloatStencil8

	// TextureFormatNV12 is a two-plane YUV 4:2:0 format: plane 0 holds
	// 8-bit luma, plane 1 holds interleaved 8-bit chroma at half resolution.
	TextureFormatNV12

	// BC (S3TC/RGTC/BPTC) block-compressed formats, 4x4 blocks.
	TextureFormatBC1RGBAUnorm
	TextureFormatBC1RGBAUnormSrgb
	TextureFormatBC2RGBAUnorm
	TextureFormatBC2RGBAUnormSrgb
	TextureFormatBC3RGBAUnorm
	TextureFormatBC3RGBAUnormSrgb
	TextureFormatBC4RUnorm
	TextureFormatBC4RSnorm
	TextureFormatBC5RGUnorm
	TextureFormatBC5RGSnorm
	TextureFormatBC6HRGBUfloat
	TextureFormatBC6HRGBFloat
	TextureFormatBC7RGBAUnorm
	TextureFormatBC7RGBAUnormSrgb

	// ETC2 and EAC block-compressed formats, 4x4 blocks.
	TextureFormatETC2RGB8Unorm
	TextureFormatETC2RGB8UnormSrgb
	TextureFormatETC2RGB8A1Unorm
	TextureFormatETC2RGB8A1UnormSrgb
	TextureFormatETC2RGBA8Unorm
	TextureFormatETC2RGBA8UnormSrgb
	TextureFormatEACR11Unorm
	TextureFormatEACR11Snorm
	TextureFormatEACRG11Unorm
	TextureFormatEACRG11Snorm

	textureFormatEnd
)

// ASTC values carry this tag with the block in bits 4..7 and the channel
// in bits 0..3.
const astcTag TextureFormat = 0x1000

// astcInvalid carries the ASTC tag but no defined block or channel.
const astcInvalid = astcTag | 0xFF

// AstcBlock is the footprint of one ASTC block in texels.
type AstcBlock uint8

// ASTC block shapes.
const (
	AstcBlock4x4 AstcBlock = iota
	AstcBlock5x4
	AstcBlock5x5
	AstcBlock6x5
	AstcBlock6x6
	AstcBlock8x5
	AstcBlock8x6
	AstcBlock8x8
	AstcBlock10x5
	AstcBlock10x6
	AstcBlock10x8
	AstcBlock10x10
	AstcBlock12x10
	AstcBlock12x12

	astcBlockCount
)

var astcBlockDims = [astcBlockCount][2]uint32{
	{4, 4}, {5, 4}, {5, 5}, {6, 5}, {6, 6}, {8, 5}, {8, 6},
	{8, 8}, {10, 5}, {10, 6}, {10, 8}, {10, 10}, {12, 10}, {12, 12},
}

// Dimensions returns the block width and height in texels.
func (b AstcBlock) Dimensions() (width, height uint32) {
	if b >= astcBlockCount {
		return 0, 0
	}
	d := astcBlockDims[b]
	return d[0], d[1]
}

// String returns the "WxH" token of the block.
func (b AstcBlock) String() string {
	w, h := b.Dimensions()
	if w == 0 {
		return fmt.Sprintf("AstcBlock(%d)", uint8(b))
	}
	return fmt.Sprintf("%dx%d", w, h)
}

// AstcChannel is the channel encoding of an ASTC format.
type AstcChannel uint8

// ASTC channel encodings.
const (
	// AstcChannelUnorm requires FeatureTextureCompressionASTC.
	AstcChannelUnorm AstcChannel = iota
	// AstcChannelUnormSrgb requires FeatureTextureCompressionASTC.
	AstcChannelUnormSrgb
	// AstcChannelHdr requires FeatureTextureCompressionASTCHDR.
	AstcChannelHdr

	astcChannelCount
)

var astcChannelNames = [astcChannelCount]string{"unorm", "unorm-srgb", "hdr"}

// String returns the serialized token of the channel.
func (c AstcChannel) String() string {
	if c >= astcChannelCount {
		return fmt.Sprintf("AstcChannel(%d)", uint8(c))
	}
	return astcChannelNames[c]
}

// ASTC returns the ASTC format with the given block shape and channel.
// Out-of-range parameters produce an invalid format (IsValid reports false).
func ASTC(block AstcBlock, channel AstcChannel) TextureFormat {
	if block >= astcBlockCount || channel >= astcChannelCount {
		return astcInvalid
	}
	return astcTag | TextureFormat(block)<<4 | TextureFormat(channel)
}

// ASTC unpacks an ASTC format. ok is false for every other format.
func (f TextureFormat) ASTC() (block AstcBlock, channel AstcChannel, ok bool) {
	if f&^0xFF != astcTag {
		return 0, 0, false
	}
	block = AstcBlock(f >> 4 & 0xF)
	channel = AstcChannel(f & 0xF)
	if block >= astcBlockCount || channel >= astcChannelCount {
		return 0, 0, false
	}
	return block, channel, true
}

// IsValid reports whether f is one of the defined formats.
func (f TextureFormat) IsValid() bool {
	if f > 0 && f < textureFormatEnd {
		return true
	}
	_, _, ok := f.ASTC()
	return ok
}

// AllTextureFormats returns every defined format, ASTC variants included,
// in declaration order.
func AllTextureFormats() []TextureFormat {
	out := make([]TextureFormat, 0, int(textureFormatEnd)-1+int(astcBlockCount)*int(astcChannelCount))
	for f := TextureFormat(1); f < textureFormatEnd; f++ {
		out = append(out, f)
	}
	for b := AstcBlock(0); b < astcBlockCount; b++ {
		for c := AstcChannel(0); c < astcChannelCount; c++ {
			out = append(out, ASTC(b, c))
		}
	}
	return out
}

// formatNames holds the serialized token of every non-ASTC format.
var formatNames = [textureFormatEnd]string{
	TextureFormatR8Unorm:              "r8unorm",
	TextureFormatR8Snorm:              "r8snorm",
	TextureFormatR8Uint:               "r8uint",
	TextureFormatR8Sint:               "r8sint",
	TextureFormatR16Uint:              "r16uint",
	TextureFormatR16Sint:              "r16sint",
	TextureFormatR16Unorm:             "r16unorm",
	TextureFormatR16Snorm:             "r16snorm",
	TextureFormatR16Float:             "r16float",
	TextureFormatRG8Unorm:             "rg8unorm",
	TextureFormatRG8Snorm:             "rg8snorm",
	TextureFormatRG8Uint:              "rg8uint",
	TextureFormatRG8Sint:              "rg8sint",
	TextureFormatR32Uint:              "r32uint",
	TextureFormatR32Sint:              "r32sint",
	TextureFormatR32Float:             "r32float",
	TextureFormatRG16Uint:             "rg16uint",
	TextureFormatRG16Sint:             "rg16sint",
	TextureFormatRG16Unorm:            "rg16unorm",
	TextureFormatRG16Snorm:            "rg16snorm",
	TextureFormatRG16Float:            "rg16float",
	TextureFormatRGBA8Unorm:           "rgba8unorm",
	TextureFormatRGBA8UnormSrgb:       "rgba8unorm-srgb",
	TextureFormatRGBA8Snorm:           "rgba8snorm",
	TextureFormatRGBA8Uint:            "rgba8uint",
	TextureFormatRGBA8Sint:            "rgba8sint",
	TextureFormatBGRA8Unorm:           "bgra8unorm",
	TextureFormatBGRA8UnormSrgb:       "bgra8unorm-srgb",
	TextureFormatRGB9E5Ufloat:         "rgb9e5ufloat",
	TextureFormatRGB10A2Uint:          "rgb10a2uint",
	TextureFormatRGB10A2Unorm:         "rgb10a2unorm",
	TextureFormatRG11B10Ufloat:        "rg11b10ufloat",
	TextureFormatRG32Uint:             "rg32uint",
	TextureFormatRG32Sint:             "rg32sint",
	TextureFormatRG32Float:            "rg32float",
	TextureFormatRGBA16Uint:           "rgba16uint",
	TextureFormatRGBA16Sint:           "rgba16sint",
	TextureFormatRGBA16Unorm:          "rgba16unorm",
	TextureFormatRGBA16Snorm:          "rgba16snorm",
	TextureFormatRGBA16Float:          "rgba16float",
	TextureFormatRGBA32Uint:           "rgba32uint",
	TextureFormatRGBA32Sint:           "rgba32sint",
	TextureFormatRGBA32Float:          "rgba32float",
	TextureFormatStencil8:             "stencil8",
	TextureFormatDepth16Unorm:         "depth16unorm",
	TextureFormatDepth24Plus:          "depth24plus",
	TextureFormatDepth24PlusStencil8:  "depth24plus-stencil8",
	TextureFormatDepth32Float:         "depth32float",
	TextureFormatDepth32FloatStencil8: "depth32float-stencil8",
	TextureFormatNV12:                 "nv12",
	TextureFormatBC1RGBAUnorm:         "bc1-rgba-unorm",
	TextureFormatBC1RGBAUnormSrgb:     "bc1-rgba-unorm-srgb",
	TextureFormatBC2RGBAUnorm:         "bc2-rgba-unorm",
	TextureFormatBC2RGBAUnormSrgb:     "bc2-rgba-unorm-srgb",
	TextureFormatBC3RGBAUnorm:         "bc3-rgba-unorm",
	TextureFormatBC3RGBAUnormSrgb:     "bc3-rgba-unorm-srgb",
	TextureFormatBC4RUnorm:            "bc4-r-unorm",
	TextureFormatBC4RSnorm:            "bc4-r-snorm",
	TextureFormatBC5RGUnorm:           "bc5-rg-unorm",
	TextureFormatBC5RGSnorm:           "bc5-rg-snorm",
	TextureFormatBC6HRGBUfloat:        "bc6h-rgb-ufloat",
	TextureFormatBC6HRGBFloat:         "bc6h-rgb-float",
	TextureFormatBC7RGBAUnorm:         "bc7-rgba-unorm",
	TextureFormatBC7RGBAUnormSrgb:     "bc7-rgba-unorm-srgb",
	TextureFormatETC2RGB8Unorm:        "etc2-rgb8unorm",
	TextureFormatETC2RGB8UnormSrgb:    "etc2-rgb8unorm-srgb",
	TextureFormatETC2RGB8A1Unorm:      "etc2-rgb8a1unorm",
	TextureFormatETC2RGB8A1UnormSrgb:  "etc2-rgb8a1unorm-srgb",
	TextureFormatETC2RGBA8Unorm:       "etc2-rgba8unorm",
	TextureFormatETC2RGBA8UnormSrgb:   "etc2-rgba8unorm-srgb",
	TextureFormatEACR11Unorm:          "eac-r11unorm",
	TextureFormatEACR11Snorm:          "eac-r11snorm",
	TextureFormatEACRG11Unorm:         "eac-rg11unorm",
	TextureFormatEACRG11Snorm:         "eac-rg11snorm",
}

var formatsByName = func() map[string]TextureFormat {
	m := make(map[string]TextureFormat, len(formatNames))
	for f := TextureFormat(1); f < textureFormatEnd; f++ {
		m[formatNames[f]] = f
	}
	return m
}()

// String returns the serialized token of the format, for example
// "depth24plus-stencil8" or "astc-8x5-unorm-srgb".
func (f TextureFormat) String() string {
	if f > 0 && f < textureFormatEnd {
		return formatNames[f]
	}
	if block, channel, ok := f.ASTC(); ok {
		return "astc-" + block.String() + "-" + channel.String()
	}
	return fmt.Sprintf("TextureFormat(%#x)", uint32(f))
}

// ParseTextureFormat decodes a serialized format token. Any string that is
// not exactly one of the tokens produced by String is rejected.
func ParseTextureFormat(s string) (TextureFormat, error) {
	if f, ok := formatsByName[s]; ok {
		return f, nil
	}
	if rest, ok := strings.CutPrefix(s, "astc-"); ok {
		if f, ok := parseASTC(rest); ok {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTextureFormat, s)
}

// parseASTC parses "{W}x{H}-{channel}".
func parseASTC(s string) (TextureFormat, bool) {
	blockTok, channelTok, ok := strings.Cut(s, "-")
	if !ok {
		return 0, false
	}
	block := AstcBlock(0)
	for ; block < astcBlockCount; block++ {
		if block.String() == blockTok {
			break
		}
	}
	if block == astcBlockCount {
		return 0, false
	}
	for c := AstcChannel(0); c < astcChannelCount; c++ {
		if astcChannelNames[c] == channelTok {
			return ASTC(block, c), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (f TextureFormat) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownTextureFormat, uint32(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TextureFormat) UnmarshalText(text []byte) error {
	v, err := ParseTextureFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
