package archive

import (
	"encoding/json"
	"testing"
)

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"create": ActionCreate,
		"c":      ActionCreate,
		"verify": ActionVerify,
		"v":      ActionVerify,
		"repair": ActionRepair,
		"r":      ActionRepair,
	}
	for input, want := range cases {
		got, err := ParseAction(input)
		if err != nil {
			t.Fatalf("ParseAction(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseAction(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseActionRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "Create", "check", "x", "cr"} {
		if _, err := ParseAction(input); err == nil {
			t.Fatalf("expected ParseAction(%q) to fail", input)
		}
	}
}

func TestActionProperties(t *testing.T) {
	if ActionCreate.NeedsArchive() || !ActionVerify.NeedsArchive() || !ActionRepair.NeedsArchive() {
		t.Fatal("unexpected NeedsArchive values")
	}
	if !ActionCreate.Writes() || ActionVerify.Writes() || !ActionRepair.Writes() {
		t.Fatal("unexpected Writes values")
	}
	if got := ActionVerify.Aliases(); len(got) != 1 || got[0] != "v" {
		t.Fatalf("unexpected aliases: %v", got)
	}
}

func TestActionJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(struct {
		Action Action `json:"action"`
	}{ActionRepair})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"action":"repair"}` {
		t.Fatalf("unexpected json: %s", data)
	}

	var decoded struct {
		Action Action `json:"action"`
	}
	if err := json.Unmarshal([]byte(`{"action":"v"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Action != ActionVerify {
		t.Fatalf("expected verify, got %s", decoded.Action)
	}
}
