package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
	"github.com/wbuf81/oscar/internal/score"
)

var (
	accent  = lipgloss.Color("#D97706")
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	foundStyle = lipgloss.NewStyle().Foreground(success)
	missStyle  = lipgloss.NewStyle().Foreground(danger)
)

// renderRecord formats a scan record as a terminal checklist.
func renderRecord(c *catalog.Catalog, rec compliance.ScanRecord) string {
	var b strings.Builder

	title := headerStyle.Render("oscar")
	subtitle := dimStyle.Render(rec.URL)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(rec.Score)).
		Render(fmt.Sprintf("%d / 100  %s", rec.Score, score.Label(rec.Score)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled))
	b.WriteString("\n\n")

	for _, cat := range orderedCategories(c, rec.Compliance) {
		renderEntry(&b, c.Label(cat), rec.Compliance[cat])
	}

	if rec.DeepScan != nil && rec.DeepScan.Performed {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Deep scan") + "  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d documents, %d items found",
			len(rec.DeepScan.ScannedDocuments), len(rec.DeepScan.ItemsFound))))
		b.WriteString("\n")

		for _, docErr := range rec.DeepScan.Errors {
			b.WriteString("    " + missStyle.Render("!") + " " + faintStyle.Render(docErr.Document+": "+docErr.Error) + "\n")
		}
	}

	b.WriteString("\n")

	return b.String()
}

// renderEntry writes one checklist line with evidence when available.
func renderEntry(b *strings.Builder, label string, entry compliance.Entry) {
	name := padRight(label, 28)

	if !entry.IsFound() {
		fmt.Fprintf(b, "  %s %s\n", missStyle.Render("✗"), dimStyle.Render(name))
		return
	}

	var evidence string

	switch {
	case entry.DeepScan:
		evidence = "found in " + entry.FoundInDocument
	case entry.Details != nil:
		evidence = entry.Details.Method
	case entry.URL != "":
		evidence = entry.URL
	}

	fmt.Fprintf(b, "  %s %s %s\n", foundStyle.Render("●"), titleStyle.Render(name), faintStyle.Render(evidence))
}

// orderedCategories lists scanned categories in catalog order with custom
// categories sorted at the end.
func orderedCategories(c *catalog.Catalog, results compliance.ResultSet) []compliance.Category {
	var cats []compliance.Category

	seen := map[compliance.Category]bool{}

	for _, cat := range c.Categories() {
		if _, ok := results[cat]; ok {
			cats = append(cats, cat)
			seen[cat] = true
		}
	}

	var custom []compliance.Category

	for cat := range results {
		if !seen[cat] {
			custom = append(custom, cat)
		}
	}

	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })

	return append(cats, custom...)
}

func scoreColor(value int) lipgloss.Color {
	switch {
	case value >= 80:
		return success
	case value >= 60:
		return lipgloss.Color("#A3E635")
	case value >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
