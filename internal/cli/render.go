package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
	"github.com/pcdshub/hxr-attenuator/pkg/solver"
)

// parseTransmissions parses a comma-separated transmission list. "nan"
// (case-insensitive) marks a stuck blade.
func parseTransmissions(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.EqualFold(f, "nan") {
			out = append(out, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "transmission %q", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyTransmissions, "no transmissions supplied")
	}
	return out, nil
}

// formatTransmission renders a transmission value compactly: fixed-point
// for mid-range values, scientific for the very opaque ones.
func formatTransmission(t float64) string {
	if math.IsNaN(t) {
		return "stuck"
	}
	if t != 0 && t < 1e-4 {
		return strconv.FormatFloat(t, 'e', 3, 64)
	}
	return strconv.FormatFloat(t, 'f', 6, 64)
}

// renderConfig renders the per-blade result table. materials may be nil
// when the input was a raw transmission vector.
func renderConfig(cfg solver.Config, materials []string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	headers := []string{"Blade", "Material", "Transmission", "State"}
	if materials == nil {
		headers = []string{"Blade", "Transmission", "State"}
	}

	rows := make([][]string, len(cfg.FilterStates))
	for i, state := range cfg.FilterStates {
		t := cfg.AllTransmissions[i]
		stateStr := "out"
		if state == 1 {
			stateStr = "IN"
		}
		if math.IsNaN(t) {
			stateStr = "stuck"
		}
		row := []string{
			strconv.Itoa(i),
			formatTransmission(t),
			stateStr,
		}
		if materials != nil {
			row = []string{strconv.Itoa(i), materials[i], formatTransmission(t), stateStr}
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(cfg.FilterStates) {
				return lipgloss.NewStyle()
			}
			if math.IsNaN(cfg.AllTransmissions[row]) {
				return styleStuck
			}
			if cfg.FilterStates[row] == 1 {
				return styleInserted
			}
			return styleRemoved
		})

	return t.Render()
}

// renderSummary renders the desired/achieved line under the blade table.
func renderSummary(tDes float64, cfg solver.Config) string {
	return fmt.Sprintf("%s %s   %s %s   %s %d",
		StyleDim.Render("desired:"), StyleNumber.Render(formatTransmission(tDes)),
		StyleDim.Render("achieved:"), StyleSuccess.Render(formatTransmission(cfg.Transmission)),
		StyleDim.Render("inserted:"), cfg.InsertedCount(),
	)
}
