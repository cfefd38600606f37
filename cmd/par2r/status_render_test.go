package main

import (
	"strings"
	"testing"

	"par2r/internal/report"
)

func TestRenderStatusLine(t *testing.T) {
	got := renderStatusLine("par2", report.KindOK, "available", false)
	want := "  par2:                [OK] available"
	if got != want {
		t.Fatalf("renderStatusLine = %q, want %q", got, want)
	}

	bare := renderStatusLine("Jobs", report.KindInfo, "", false)
	if !strings.HasSuffix(bare, "[INFO]") {
		t.Fatalf("expected bare status, got %q", bare)
	}

	colored := renderStatusLine("par2", report.KindError, "missing", true)
	if !strings.HasPrefix(colored, "\x1b[31m") || !strings.HasSuffix(colored, "\x1b[0m") {
		t.Fatalf("expected red ANSI wrapping, got %q", colored)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Dependencies ", false)
	if len(lines) != 2 || lines[0] != "== Dependencies ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header %q", lines)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Name", "Available"}, [][]string{{"par2", "yes"}, {"short"}}, []columnAlignment{alignLeft, alignRight})
	for _, want := range []string{"Name", "Available", "par2", "yes", "short"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table without headers")
	}
}
