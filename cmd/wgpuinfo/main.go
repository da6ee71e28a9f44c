// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command wgpuinfo prints the capabilities of the default GPU adapter: its
// features, its limits compared against a named limit preset, and what
// every texture format guarantees under the adapter's features.
//
// Usage:
//
//	wgpuinfo [-preset webgpu] [-features bc,float32-filterable] [-format rgba8unorm,depth32float]
//	         [-all-failures] [-mock] [-json] [-lang en] [-v]
//
// The exit status is 1 when the adapter misses a required feature or a
// limit of the preset.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/language"

	"github.com/gogpu/wgtypes"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wgpuinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		preset      = fs.String("preset", "", "limit preset to compare against ("+strings.Join(wgtypes.LimitPresetNames(), ", ")+"); default: best satisfied")
		features    = fs.String("features", "", "comma separated features the adapter must support")
		formats     = fs.String("format", "", "comma separated texture formats to describe; default: all")
		allFailures = fs.Bool("all-failures", false, "report every failing limit, not just the first")
		mock        = fs.Bool("mock", false, "use the wgpu mock adapter instead of a real GPU")
		lowPower    = fs.Bool("low-power", false, "prefer a low power adapter")
		asJSON      = fs.Bool("json", false, "write the report as JSON")
		lang        = fs.String("lang", "en", "BCP 47 language tag used to format numbers")
		verbose     = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		wgtypes.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer wgtypes.SetLogger(nil)
	}

	opts := reportOptions{preset: *preset, allFailures: *allFailures}
	var err error
	if opts.required, err = wgtypes.ParseFeatures(*features); err != nil {
		fmt.Fprintln(stderr, "wgpuinfo:", err)
		return 2
	}
	if opts.formats, err = parseFormats(*formats); err != nil {
		fmt.Fprintln(stderr, "wgpuinfo:", err)
		return 2
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintln(stderr, "wgpuinfo:", err)
		return 2
	}

	power := gputypes.PowerPreferenceHighPerformance
	if *lowPower {
		power = gputypes.PowerPreferenceLowPower
	}
	probe, err := probeAdapter(*mock, power)
	if err != nil {
		fmt.Fprintln(stderr, "wgpuinfo:", err)
		return 1
	}

	rep, err := buildReport(probe, opts)
	if err != nil {
		fmt.Fprintln(stderr, "wgpuinfo:", err)
		return 2
	}

	if *asJSON {
		if err := renderJSON(stdout, rep); err != nil {
			fmt.Fprintln(stderr, "wgpuinfo:", err)
			return 1
		}
	} else {
		newRenderer(stdout, tag).render(rep)
	}

	if rep.failed() {
		return 1
	}
	return 0
}
