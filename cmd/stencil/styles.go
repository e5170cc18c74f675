package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stencildev/stencil/internal/model"
)

const timeRounding = time.Millisecond

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func renderCreated(result *model.ScaffoldResult) string {
	var b strings.Builder
	for _, created := range result.Created {
		switch created.Kind {
		case model.KindDirectory:
			b.WriteString("  " + dirStyle.Render(created.Path+"/") + "\n")
		default:
			b.WriteString("  " + fileStyle.Render(created.Path) + "\n")
		}
	}
	return b.String()
}

func renderSummary(result *model.ScaffoldResult) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Scaffolded %s", result.Root)) + "\n")
	b.WriteString(renderCreated(result))
	b.WriteString(successStyle.Render(fmt.Sprintf("%d entries in %s", len(result.Created), result.Duration.Round(timeRounding))) + "\n")
	return b.String()
}

func renderPartial(result *model.ScaffoldResult) string {
	var b strings.Builder
	b.WriteString(failureStyle.Render("Scaffold aborted") + "\n")
	if len(result.Created) == 0 {
		b.WriteString(mutedStyle.Render("  no paths were written") + "\n")
		return b.String()
	}
	b.WriteString(mutedStyle.Render("  written before failure:") + "\n")
	b.WriteString(renderCreated(result))
	return b.String()
}

func renderPlan(plan *model.Plan) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Plan for %s", plan.Root)) + "\n")
	for _, entry := range plan.Entries {
		detail := entry.Mode.String()
		if entry.Kind == model.KindFile {
			detail = fmt.Sprintf("%s, %d bytes", entry.Mode, entry.Size)
		}
		line := fmt.Sprintf("  %-14s %s (%s)", entry.Status, entry.Path, detail)
		if entry.Status == model.StatusWouldReplace {
			b.WriteString(failureStyle.Render(line) + "\n")
		} else {
			b.WriteString(fileStyle.Render(line) + "\n")
		}
	}
	if plan.RootExists {
		b.WriteString(mutedStyle.Render("root already exists; scaffolding requires --force") + "\n")
	}
	return b.String()
}
