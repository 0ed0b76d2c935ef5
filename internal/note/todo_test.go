package note

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractTodos(t *testing.T) {
	content := strings.Join([]string{
		"x",
		"- [ ] a",
		"y",
		"- [x] b",
	}, "\n")

	todos := ExtractTodos(content)

	want := []TodoItem{
		{Text: "a", Checked: false, Index: 1},
		{Text: "b", Checked: true, Index: 3},
	}
	if !reflect.DeepEqual(todos, want) {
		t.Errorf("todos = %v, want %v", todos, want)
	}
}

func TestExtractTodosMarkerVariants(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		text    string
		checked bool
	}{
		{name: "dash marker", line: "- [ ] task", text: "task", checked: false},
		{name: "star marker", line: "* [x] done", text: "done", checked: true},
		{name: "plus marker", line: "+ [ ] task", text: "task", checked: false},
		{name: "no marker", line: "[ ] bare", text: "bare", checked: false},
		{name: "indented", line: "   - [ ] nested", text: "nested", checked: false},
		{name: "uppercase X", line: "- [X] shout", text: "shout", checked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos := ExtractTodos(tt.line)
			if len(todos) != 1 {
				t.Fatalf("expected 1 todo, got %d", len(todos))
			}
			if todos[0].Text != tt.text || todos[0].Checked != tt.checked {
				t.Errorf("got %+v, want text=%q checked=%v", todos[0], tt.text, tt.checked)
			}
		})
	}
}

func TestExtractTodosIgnoresNonMatches(t *testing.T) {
	content := strings.Join([]string{
		"- [ ]",          // empty checkbox without text
		"plain text",
		"- regular list item",
		"[nope] not a checkbox",
	}, "\n")

	if todos := ExtractTodos(content); len(todos) != 0 {
		t.Errorf("expected no todos, got %v", todos)
	}
}

func TestCheckAndUncheckLine(t *testing.T) {
	if got := CheckLine("- [ ] a"); got != "- [x] a" {
		t.Errorf("CheckLine = %q", got)
	}
	if got := UncheckLine("- [X] b"); got != "- [ ] b" {
		t.Errorf("UncheckLine = %q", got)
	}
	// Only the first marker is touched.
	if got := CheckLine("- [ ] a [ ] b"); got != "- [x] a [ ] b" {
		t.Errorf("CheckLine first-only = %q", got)
	}
	// Non-todo lines pass through unchanged.
	if got := UncheckLine("plain"); got != "plain" {
		t.Errorf("UncheckLine passthrough = %q", got)
	}
}

func TestToggleThenReExtract(t *testing.T) {
	lines := []string{"x", "- [ ] a", "y", "- [x] b"}
	lines[1] = CheckLine(lines[1])

	todos := ExtractTodos(strings.Join(lines, "\n"))

	if !todos[0].Checked || todos[0].Index != 1 {
		t.Errorf("index 1 should now be checked: %+v", todos[0])
	}
	if !todos[1].Checked || todos[1].Index != 3 {
		t.Errorf("index 3 should be unchanged: %+v", todos[1])
	}
}
