// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/wgtypes"
	"github.com/gogpu/wgtypes/cache"
	"github.com/gogpu/wgtypes/shaderbridge"
)

type adapterSummary struct {
	Name       string `json:"name"`
	Vendor     string `json:"vendor"`
	VendorID   uint32 `json:"vendorId"`
	DeviceID   uint32 `json:"deviceId"`
	DeviceType string `json:"deviceType"`
	Backend    string `json:"backend"`
	Driver     string `json:"driver,omitempty"`
}

type limitRow struct {
	Name    string `json:"name"`
	Minimum bool   `json:"minimum,omitempty"`
	Adapter uint64 `json:"adapter"`
	Preset  uint64 `json:"preset"`
	OK      bool   `json:"ok"`
}

type formatRow struct {
	Format          wgtypes.TextureFormat         `json:"format"`
	Enabled         bool                          `json:"enabled"`
	MissingFeatures []string                      `json:"missingFeatures,omitempty"`
	SampleType      string                        `json:"sampleType,omitempty"`
	Capabilities    wgtypes.TextureFormatFeatures `json:"capabilities"`
	SampleCounts    []uint32                      `json:"sampleCounts"`
	Storage         string                        `json:"storage,omitempty"`
}

type report struct {
	Adapter         adapterSummary `json:"adapter"`
	Features        []string       `json:"features"`
	Preset          string         `json:"preset"`
	Limits          []limitRow     `json:"limits"`
	LimitFailures   []string       `json:"limitFailures,omitempty"`
	MissingFeatures []string       `json:"missingFeatures,omitempty"`
	Formats         []formatRow    `json:"formats"`
}

// failed reports whether the adapter falls short of the preset or of the
// required features.
func (r *report) failed() bool {
	return len(r.LimitFailures) > 0 || len(r.MissingFeatures) > 0
}

type reportOptions struct {
	// preset names the limit preset to compare against. Empty selects the
	// most capable preset the adapter satisfies.
	preset      string
	required    wgtypes.Features
	formats     []wgtypes.TextureFormat
	allFailures bool
}

func buildReport(p adapterProbe, opts reportOptions) (*report, error) {
	r := &report{
		Adapter: adapterSummary{
			Name:       p.Info.Name,
			Vendor:     p.Info.Vendor,
			VendorID:   p.Info.VendorID,
			DeviceID:   p.Info.DeviceID,
			DeviceType: p.Info.DeviceType.String(),
			Backend:    p.Info.Backend.String(),
			Driver:     p.Info.Driver,
		},
		Features:        p.Features.Names(),
		MissingFeatures: opts.required.Difference(p.Features).Names(),
	}

	name, preset, err := selectPreset(opts.preset, p.Limits)
	if err != nil {
		return nil, err
	}
	r.Preset = name

	failed := make(map[string]bool)
	preset.CheckLimitsWithFailFn(p.Limits, false, func(name string, requested, allowed uint64) {
		failed[name] = true
	})
	preset.CheckLimitsWithFailFn(p.Limits, !opts.allFailures, func(name string, requested, allowed uint64) {
		r.LimitFailures = append(r.LimitFailures, (&wgtypes.LimitError{
			Limit: name, Requested: requested, Allowed: allowed,
		}).Error())
	})
	for _, n := range wgtypes.LimitNames() {
		adapterValue, _ := p.Limits.Value(n)
		presetValue, _ := preset.Value(n)
		r.Limits = append(r.Limits, limitRow{
			Name:    n,
			Minimum: wgtypes.IsMinimum(n),
			Adapter: adapterValue,
			Preset:  presetValue,
			OK:      !failed[n],
		})
	}

	formats := opts.formats
	if len(formats) == 0 {
		formats = wgtypes.AllTextureFormats()
	}
	memo := cache.New(p.Features)
	for _, f := range formats {
		r.Formats = append(r.Formats, describeFormat(f, p.Features, memo))
	}
	return r, nil
}

// selectPreset resolves the preset to compare the adapter against.
func selectPreset(name string, supported wgtypes.Limits) (string, wgtypes.Limits, error) {
	if name != "" {
		l, ok := wgtypes.LookupLimits(name)
		if !ok {
			return "", wgtypes.Limits{}, fmt.Errorf("unknown limit preset %q (have %s)",
				name, strings.Join(wgtypes.LimitPresetNames(), ", "))
		}
		return name, l, nil
	}
	if best, l, ok := wgtypes.BestLimitPreset(supported); ok {
		return best, l, nil
	}
	// Nothing fits; compare against the baseline so the failures show.
	best, l := wgtypes.DefaultLimitPreset()
	return best, l, nil
}

func describeFormat(f wgtypes.TextureFormat, features wgtypes.Features, memo *cache.FormatFeatures) formatRow {
	caps := memo.Get(f)
	row := formatRow{
		Format:          f,
		Enabled:         f.CheckFeatures(features) == nil,
		MissingFeatures: f.RequiredFeatures().Difference(features).Names(),
		SampleType:      sampleTypeString(f, features),
		Capabilities:    caps,
		SampleCounts:    caps.Flags.SupportedSampleCounts(),
	}
	switch {
	case shaderbridge.CheckStorageBinding(f, ir.StorageAccessReadWrite, features) == nil:
		row.Storage = "read_write"
	case shaderbridge.CheckStorageBinding(f, ir.StorageAccessWrite, features) == nil:
		row.Storage = "write"
	}
	return row
}

// sampleTypeString describes how f is sampled. Combined depth-stencil and
// multi-planar formats list the sample type of each aspect.
func sampleTypeString(f wgtypes.TextureFormat, features wgtypes.Features) string {
	if st, ok := f.SampleType(nil, &features); ok {
		return st.String()
	}
	var parts []string
	for _, a := range []wgtypes.TextureAspect{
		wgtypes.TextureAspectDepthOnly,
		wgtypes.TextureAspectStencilOnly,
		wgtypes.TextureAspectPlane0,
		wgtypes.TextureAspectPlane1,
		wgtypes.TextureAspectPlane2,
	} {
		if st, ok := f.SampleType(a.Ptr(), &features); ok {
			parts = append(parts, st.String())
		}
	}
	return strings.Join(slices.Compact(parts), "/")
}

// parseFormats parses a comma separated list of format names.
func parseFormats(list string) ([]wgtypes.TextureFormat, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []wgtypes.TextureFormat
	for _, s := range strings.Split(list, ",") {
		f, err := wgtypes.ParseTextureFormat(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
