package textdiff

import (
	"strings"
	"testing"
)

func TestDiffEqual(t *testing.T) {
	text, changed := Diff(`{"a": 1}`, `{"a": 1}`, false)
	if changed {
		t.Errorf("equal documents reported changed: %q", text)
	}
}

func TestDiffChanged(t *testing.T) {
	text, changed := Diff(`{"a": 1}`, `{"a": 2}`, false)
	if !changed {
		t.Fatal("differing documents reported equal")
	}
	if !strings.Contains(text, "{-1-}") || !strings.Contains(text, "{+2+}") {
		t.Errorf("diff text %q missing change markers", text)
	}
}

func TestDiffMultiline(t *testing.T) {
	from := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	to := "{\n  \"a\": 1,\n  \"b\": 3\n}\n"
	text, changed := Diff(from, to, false)
	if !changed {
		t.Fatal("differing documents reported equal")
	}
	if !strings.Contains(text, `"a": 1`) {
		t.Errorf("diff text %q lost unchanged content", text)
	}
}
