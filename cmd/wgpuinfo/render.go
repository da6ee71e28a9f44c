// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Width(10)
	passStyle   = cellStyle.Foreground(lipgloss.Color("#90EE90"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("#626262"))
)

const (
	markPass = "ok"
	markFail = "FAIL"
)

// renderer writes a report for humans. Numbers are grouped for the
// configured locale.
type renderer struct {
	w io.Writer
	p *message.Printer
}

func newRenderer(w io.Writer, lang language.Tag) *renderer {
	return &renderer{w: w, p: message.NewPrinter(lang)}
}

func (r *renderer) number(v uint64) string {
	return r.p.Sprintf("%d", v)
}

func (r *renderer) field(label, value string) {
	fmt.Fprintln(r.w, labelStyle.Render(label)+value)
}

func (r *renderer) render(rep *report) {
	fmt.Fprintln(r.w, titleStyle.Render("Adapter"))
	r.field("Name", rep.Adapter.Name)
	r.field("Vendor", r.p.Sprintf("%s (%#04x:%#04x)", rep.Adapter.Vendor, rep.Adapter.VendorID, rep.Adapter.DeviceID))
	r.field("Type", rep.Adapter.DeviceType+" / "+rep.Adapter.Backend)
	if rep.Adapter.Driver != "" {
		r.field("Driver", rep.Adapter.Driver)
	}
	features := "(none)"
	if len(rep.Features) > 0 {
		features = strings.Join(rep.Features, ", ")
	}
	r.field("Features", features)
	fmt.Fprintln(r.w)

	r.renderLimits(rep)
	fmt.Fprintln(r.w)
	r.renderFormats(rep)

	if len(rep.MissingFeatures) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, failStyle.Render("missing features: "+strings.Join(rep.MissingFeatures, ", ")))
	}
	if len(rep.LimitFailures) > 0 {
		fmt.Fprintln(r.w)
		for _, msg := range rep.LimitFailures {
			fmt.Fprintln(r.w, failStyle.Render(msg))
		}
	}
}

func (r *renderer) renderLimits(rep *report) {
	fmt.Fprintln(r.w, titleStyle.Render("Limits vs preset "+rep.Preset))

	rows := make([][]string, 0, len(rep.Limits))
	for _, l := range rep.Limits {
		name := l.Name
		if l.Minimum {
			name += " (min)"
		}
		mark := markPass
		if !l.OK {
			mark = markFail
		}
		rows = append(rows, []string{name, r.number(l.Adapter), r.number(l.Preset), mark})
	}
	fmt.Fprintln(r.w, styledTable([]string{"Limit", "Adapter", "Preset", ""}, rows))
}

func (r *renderer) renderFormats(rep *report) {
	fmt.Fprintln(r.w, titleStyle.Render("Texture formats"))

	rows := make([][]string, 0, len(rep.Formats))
	for _, f := range rep.Formats {
		var counts []string
		for _, n := range f.SampleCounts {
			counts = append(counts, r.number(uint64(n)))
		}
		mark := markPass
		if !f.Enabled {
			mark = "needs " + strings.Join(f.MissingFeatures, ", ")
		}
		rows = append(rows, []string{
			f.Format.String(),
			f.SampleType,
			f.Capabilities.AllowedUsages.String(),
			f.Capabilities.Flags.String(),
			strings.Join(counts, ","),
			f.Storage,
			mark,
		})
	}
	fmt.Fprintln(r.w, styledTable(
		[]string{"Format", "Sample type", "Usages", "Flags", "Samples", "Storage", ""}, rows))
}

// styledTable renders rows with the last column styled as a pass or fail
// marker.
func styledTable(headers []string, rows [][]string) string {
	last := len(headers) - 1
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col != last || row < 0 || row >= len(rows):
				return cellStyle
			case rows[row][col] == markPass:
				return passStyle
			default:
				return failStyle
			}
		}).
		String()
}

func renderJSON(w io.Writer, rep *report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
