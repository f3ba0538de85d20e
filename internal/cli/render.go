// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pwd-strength/internal/api"
	"pwd-strength/pkg/strength"
)

const ruleWidth = 60

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	levelColors = map[strength.Level]lipgloss.Color{
		strength.VeryWeak:   lipgloss.Color("196"),
		strength.Weak:       lipgloss.Color("208"),
		strength.Moderate:   lipgloss.Color("226"),
		strength.Strong:     lipgloss.Color("118"),
		strength.VeryStrong: lipgloss.Color("46"),
	}
)

var bestPractices = []string{
	"Use a unique password for each account",
	"Consider using a password manager",
	"Enable two-factor authentication when available",
	"Use passphrases with random words",
	"Avoid personal information in passwords",
	"Update passwords regularly for sensitive accounts",
}

// jsonReport is a report as printed by --json.
type jsonReport struct {
	strength.Report
	Reference *api.Reference `json:"zxcvbn"`
}

// MarshalJSON merges the reference into the report object. Embedding alone
// would promote the report's own MarshalJSON and drop it.
func (r jsonReport) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(r.Report)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	if fields["zxcvbn"], err = json.Marshal(r.Reference); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func levelStyle(level strength.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(levelColors[level]).Bold(true)
}

func rule(char string) string {
	return strings.Repeat(char, ruleWidth)
}

// renderReport prints one report. The password itself is never printed.
func renderReport(w io.Writer, report strength.Report, ref *api.Reference) {
	fmt.Fprintln(w, titleStyle.Render("PASSWORD SECURITY ANALYSIS REPORT"))
	fmt.Fprintln(w, rule("="))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("OVERALL STRENGTH"))
	fmt.Fprintf(w, "   %s %d/%d\n", labelStyle.Render("Score:"), report.Score, strength.MaxScore)
	fmt.Fprintf(w, "   %s %s\n", labelStyle.Render("Level:"), levelStyle(report.Level).Render(report.Level.String()))
	fmt.Fprintf(w, "   %s %s\n", labelStyle.Render("Estimated crack time:"), report.CrackTime.Display)
	if ref != nil {
		fmt.Fprintf(w, "   %s %d/4, crack time %s\n", labelStyle.Render("zxcvbn reference:"), ref.Score, ref.CrackTimeDisplay)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("SECURITY CRITERIA"))
	for _, res := range report.Results {
		mark := failStyle.Render("✘")
		if res.Passed {
			mark = passStyle.Render("✔")
		}
		fmt.Fprintf(w, "   %s %s\n", mark, res.Label)
		fmt.Fprintf(w, "      %s\n", labelStyle.Render(res.Rationale))
	}

	if warnings := report.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("SECURITY WARNINGS"))
		for _, warning := range warnings {
			fmt.Fprintf(w, "   • %s\n", warningStyle.Render(warning))
		}
	}

	if suggestions := report.Suggestions(); len(suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("IMPROVEMENT SUGGESTIONS"))
		for _, suggestion := range suggestions {
			fmt.Fprintf(w, "   • %s\n", suggestion)
		}
	}
}

func renderTips(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("SECURITY BEST PRACTICES"))
	for _, tip := range bestPractices {
		fmt.Fprintf(w, "   • %s\n", tip)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule("="))
}

// renderBatch prints the reports in input order, as text or as a JSON array.
func renderBatch(w io.Writer, reports []strength.Report, refs []*api.Reference, asJSON bool, tips bool) error {
	if asJSON {
		out := make([]jsonReport, len(reports))
		for i := range reports {
			out[i] = jsonReport{Report: reports[i], Reference: refs[i]}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i := range reports {
		if len(reports) > 1 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Analysis %d/%d", i+1, len(reports))))
		}
		renderReport(w, reports[i], refs[i])
		if i < len(reports)-1 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, rule("-"))
		}
	}

	if tips {
		renderTips(w)
	}
	return nil
}

func renderCriteria(w io.Writer, criteria []strength.Criterion, asJSON bool) error {
	if asJSON {
		type criterion struct {
			ID        strength.CriterionID `json:"id"`
			Label     string               `json:"label"`
			Weight    int                  `json:"weight"`
			Rationale string               `json:"rationale"`
		}

		out := make([]criterion, len(criteria))
		for i, c := range criteria {
			out[i] = criterion{ID: c.ID, Label: c.Label, Weight: c.Weight, Rationale: c.Rationale}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-14s %-30s %6s  %s", "ID", "CRITERION", "WEIGHT", "RATIONALE")))
	total := 0
	for _, c := range criteria {
		total += c.Weight
		fmt.Fprintf(w, "%-14s %-30s %6d  %s\n", c.ID, c.Label, c.Weight, labelStyle.Render(c.Rationale))
	}
	fmt.Fprintf(w, "%-14s %-30s %6d\n", "", "total", total)
	return nil
}
