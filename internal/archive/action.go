package archive

import (
	"fmt"
	"strings"
)

// Action is the archive operation requested for a run.
type Action int

const (
	ActionCreate Action = iota + 1
	ActionVerify
	ActionRepair
)

// Actions lists every supported action in CLI order.
var Actions = []Action{ActionCreate, ActionVerify, ActionRepair}

// ParseAction resolves the CLI spellings (create/c, verify/v, repair/r).
// Matching is exact.
func ParseAction(value string) (Action, error) {
	for _, action := range Actions {
		if value == action.String() {
			return action, nil
		}
		for _, alias := range action.Aliases() {
			if value == alias {
				return action, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid action %q (choose from create, c, verify, v, repair, r)", value)
}

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionVerify:
		return "verify"
	case ActionRepair:
		return "repair"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Aliases returns the short CLI forms for the action.
func (a Action) Aliases() []string {
	if a < ActionCreate || a > ActionRepair {
		return nil
	}
	return []string{a.String()[:1]}
}

// NeedsArchive reports whether the action requires an existing archive.
func (a Action) NeedsArchive() bool {
	return a == ActionVerify || a == ActionRepair
}

// Writes reports whether the action may modify files in the target directory.
func (a Action) Writes() bool {
	return a == ActionCreate || a == ActionRepair
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	if a < ActionCreate || a > ActionRepair {
		return nil, fmt.Errorf("unknown action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts any spelling ParseAction accepts.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
