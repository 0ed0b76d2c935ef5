package note

import (
	"regexp"
	"strings"
)

// TodoItem is a checklist line extracted from note content. Index is the
// zero-based line number in the file and is the join key used for toggling;
// any mutation must re-read the file and locate the line fresh, because an
// external editor session can shift line numbers between extraction and
// toggle.
type TodoItem struct {
	Text    string
	Checked bool
	Index   int
}

var (
	uncheckedItem = regexp.MustCompile(`^\s*[-*+]?\s*\[ \]\s*(.+)$`)
	checkedItem   = regexp.MustCompile(`(?i)^\s*[-*+]?\s*\[x\]\s*(.+)$`)
	checkedMark   = regexp.MustCompile(`(?i)\[x\]`)
)

// ExtractTodos returns one TodoItem per checklist line, in file order. A
// line matches at most one of the unchecked/checked patterns.
func ExtractTodos(content string) []TodoItem {
	var todos []TodoItem
	for i, line := range strings.Split(content, "\n") {
		if m := uncheckedItem.FindStringSubmatch(line); m != nil {
			todos = append(todos, TodoItem{
				Text:    strings.TrimSpace(m[1]),
				Checked: false,
				Index:   i,
			})
		} else if m := checkedItem.FindStringSubmatch(line); m != nil {
			todos = append(todos, TodoItem{
				Text:    strings.TrimSpace(m[1]),
				Checked: true,
				Index:   i,
			})
		}
	}
	return todos
}

// IsTodoLine reports whether the line carries either checkbox marker.
func IsTodoLine(line string) bool {
	return strings.Contains(line, "[ ]") || checkedMark.MatchString(line)
}

// CheckLine replaces the first unchecked marker with a checked one. Lines
// without an unchecked marker are returned as-is.
func CheckLine(line string) string {
	return strings.Replace(line, "[ ]", "[x]", 1)
}

// UncheckLine replaces the first checked marker, case-insensitively, with an
// unchecked one. Lines without a checked marker are returned as-is.
func UncheckLine(line string) string {
	loc := checkedMark.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + "[ ]" + line[loc[1]:]
}
