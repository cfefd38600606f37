package main

import (
	"fmt"
	"strings"

	"par2r/internal/report"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind report.Kind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		return report.Colorize(kind, base)
	}
	return base
}

func statusKindLabel(kind report.Kind) string {
	return strings.ToUpper(kind.String())
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = report.Colorize(report.KindInfo, line)
		rule = report.Colorize(report.KindInfo, rule)
	}
	return []string{line, rule}
}
