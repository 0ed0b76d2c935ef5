package templater

import (
	"strings"
	"testing"
)

func TestExecuteNoteTemplate(t *testing.T) {
	tmpl, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out, err := tmpl.Execute("note", NoteData{
		Title:   "2024-05-01",
		Created: "2024-05-01T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	want := "---\n" +
		"title: 2024-05-01\n" +
		"created: 2024-05-01T09:00:00Z\n" +
		"---\n\n" +
		"# 2024-05-01\n\n" +
		"## TODO:\n" +
		"- [ ]\n" +
		"- [ ]\n"
	if out != want {
		t.Errorf("rendered note = %q, want %q", out, want)
	}
}

func TestExecuteVaultConfigTemplate(t *testing.T) {
	tmpl, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out, err := tmpl.Execute("vault-config", nil)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !strings.Contains(out, `"theme": "synthwave-84"`) {
		t.Errorf("vault config missing theme default: %q", out)
	}
}

func TestExecuteUnknownTemplate(t *testing.T) {
	tmpl, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := tmpl.Execute("missing", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
