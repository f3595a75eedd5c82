// Package view renders listing rows for an interactive terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JohnDeved/docfmt/internal/listing"
)

// Title renders a heading line.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Help renders muted hint text.
func Help(s string) string {
	return helpStyle.Render(s)
}

// RenderRow styles a listing row and pads it to width.
func RenderRow(r listing.Row, width int) string {
	name := fileStyle.Render(r.Name)
	if r.IsDir {
		name = dirStyle.Render(r.Name)
	}

	line := fmt.Sprintf("  %s  %s  %s",
		sizeStyle.Render(r.Size),
		dateStyle.Render(r.Date),
		name,
	)
	return padToWidth(line, width)
}

func padToWidth(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
