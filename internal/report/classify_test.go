package report

import (
	"errors"
	"strings"
	"testing"

	"par2r/internal/archive"
)

func TestClassify(t *testing.T) {
	const dir = "/photos/A"
	tests := []struct {
		name     string
		result   archive.Result
		kind     Kind
		contains string
	}{
		{"create ok", archive.Result{Action: archive.ActionCreate, Code: 0, Invoked: true}, KindOK, "OK: created par2 archive in /photos/A"},
		{"create error", archive.Result{Action: archive.ActionCreate, Code: 3, Invoked: true}, KindError, "return code 3 in /photos/A"},
		{"create code 1", archive.Result{Action: archive.ActionCreate, Code: 1, Invoked: true}, KindError, "return code 1"},
		{"create signal", archive.Result{Action: archive.ActionCreate, Code: -1, Invoked: true}, KindError, "return code -1"},
		{"verify ok", archive.Result{Action: archive.ActionVerify, Code: 0, Invoked: true}, KindOK, "OK: data verified intact"},
		{"verify repairs needed", archive.Result{Action: archive.ActionVerify, Code: 1, Invoked: true}, KindWarn, "REPAIRS NEEDED"},
		{"verify insufficient", archive.Result{Action: archive.ActionVerify, Code: 2, Invoked: true}, KindError, "insufficient recovery data"},
		{"verify missing", archive.Result{Action: archive.ActionVerify, Code: archive.MissingArchiveCode}, KindError, "no par2 archive found in /photos/A"},
		{"verify other", archive.Result{Action: archive.ActionVerify, Code: 5, Invoked: true}, KindError, "something has gone wrong! par2 exited with return code 5"},
		{"repair ok", archive.Result{Action: archive.ActionRepair, Code: 0, Invoked: true}, KindOK, "no repairs required or successfully repaired"},
		{"repair code 1", archive.Result{Action: archive.ActionRepair, Code: 1, Invoked: true}, KindError, "repairing failed (unknown cause)"},
		{"repair insufficient", archive.Result{Action: archive.ActionRepair, Code: 2, Invoked: true}, KindError, "repairing failed - insufficient recovery data"},
		{"repair missing", archive.Result{Action: archive.ActionRepair, Code: archive.MissingArchiveCode}, KindError, "no par2 archive found"},
		{"repair other", archive.Result{Action: archive.ActionRepair, Code: 7, Invoked: true}, KindError, "repairing failed (unknown cause). par2 exited with return code 7"},
		{"launch failure", archive.Result{Action: archive.ActionVerify, Code: -1, Invoked: true, Err: errors.New("not found")}, KindError, "unable to run par2 in /photos/A: not found"},
		{"unknown action", archive.Result{}, KindError, "unknown action"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.result.Dir = dir
			got := Classify(tc.result)
			if got.Kind != tc.kind {
				t.Fatalf("kind = %s, want %s (%q)", got.Kind, tc.kind, got.Message)
			}
			if !strings.Contains(got.Message, tc.contains) {
				t.Fatalf("message %q does not contain %q", got.Message, tc.contains)
			}
			if got.Dir != dir {
				t.Fatalf("dir = %q, want %q", got.Dir, dir)
			}
			if got.Failed() != (tc.kind != KindOK) {
				t.Fatalf("Failed() = %v for kind %s", got.Failed(), tc.kind)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	result := archive.Result{Dir: "/x/B", Action: archive.ActionVerify, Code: archive.MissingArchiveCode}
	if Classify(result) != Classify(result) {
		t.Fatal("expected identical outcomes for identical results")
	}
}
