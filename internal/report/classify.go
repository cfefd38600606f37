package report

import (
	"fmt"

	"par2r/internal/archive"
)

// Kind grades an outcome.
type Kind int

const (
	KindInfo Kind = iota
	KindOK
	KindWarn
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindWarn:
		return "warn"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the human-readable classification of one result.
type Outcome struct {
	Dir     string
	Kind    Kind
	Message string
}

// Failed reports whether the outcome should count against the run.
func (o Outcome) Failed() bool {
	return o.Kind == KindWarn || o.Kind == KindError
}

// Classify maps a result to its outcome line.
func Classify(result archive.Result) Outcome {
	dir := result.Dir
	if result.Err != nil {
		return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: unable to run par2 in %s: %v", dir, result.Err)}
	}
	switch result.Action {
	case archive.ActionCreate:
		return classifyCreate(dir, result.Code)
	case archive.ActionVerify:
		return classifyVerify(dir, result.Code)
	case archive.ActionRepair:
		return classifyRepair(dir, result.Code)
	default:
		return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: unknown action %s for %s", result.Action, dir)}
	}
}

func classifyCreate(dir string, code int) Outcome {
	if code == 0 {
		return Outcome{Dir: dir, Kind: KindOK, Message: fmt.Sprintf("OK: created par2 archive in %s", dir)}
	}
	return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: par2 exited with return code %d in %s", code, dir)}
}

func classifyVerify(dir string, code int) Outcome {
	switch code {
	case 0:
		return Outcome{Dir: dir, Kind: KindOK, Message: fmt.Sprintf("OK: data verified intact for par2 archive in %s", dir)}
	case 1:
		return Outcome{Dir: dir, Kind: KindWarn, Message: fmt.Sprintf("***REPAIRS NEEDED***: par2 exited with return code %d in %s", code, dir)}
	case 2:
		return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: repairs needed but ***insufficient recovery data***. par2 exited with return code %d in %s", code, dir)}
	case archive.MissingArchiveCode:
		return missingOutcome(dir)
	default:
		return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: something has gone wrong! par2 exited with return code %d in %s", code, dir)}
	}
}

func classifyRepair(dir string, code int) Outcome {
	switch code {
	case 0:
		return Outcome{Dir: dir, Kind: KindOK, Message: fmt.Sprintf("OK: no repairs required or successfully repaired par2 archive in %s", dir)}
	case 2:
		return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: repairing failed - insufficient recovery data. par2 exited with return code %d in %s", code, dir)}
	case archive.MissingArchiveCode:
		return missingOutcome(dir)
	default:
		return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: repairing failed (unknown cause). par2 exited with return code %d in %s", code, dir)}
	}
}

func missingOutcome(dir string) Outcome {
	return Outcome{Dir: dir, Kind: KindError, Message: fmt.Sprintf("ERROR: no par2 archive found in %s", dir)}
}
