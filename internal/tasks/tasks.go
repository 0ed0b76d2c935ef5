// Package tasks scans every note in a vault for markdown checklist items.
package tasks

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const (
	StatusUnchecked = "unchecked"
	StatusChecked   = "checked"
)

// Task is a single checklist item found in a note.
type Task struct {
	ID      int
	Status  string
	Content string
	Path    string
	Title   string
	Line    int
}

func (t Task) Checked() bool { return t.Status == StatusChecked }

// Scanner collects tasks across a notes directory.
type Scanner struct {
	dir    string
	tasks  []Task
	nextID int
}

func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir, nextID: 1}
}

// Walk traverses the scanner's directory and processes markdown files.
// A missing directory yields no tasks and no error.
func (s *Scanner) Walk() error {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(
		s.dir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("error walking the path %q: %w", path, err)
			}
			if !info.IsDir() && filepath.Ext(path) == ".md" {
				if err := s.scan(path); err != nil {
					return err
				}
			}
			return nil
		},
	)
}

func (s *Scanner) scan(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	title := parseTitle(source)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	document := parser.Parse(reader)

	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			item, ok := n.(*ast.ListItem)
			if !ok {
				return ast.WalkContinue, nil
			}

			content := strings.TrimSpace(string(item.Text(source)))
			line := 0
			if lines := item.Lines(); lines != nil && lines.Len() > 0 {
				segment := lines.At(0)
				line = 1 + bytes.Count(source[:segment.Start], []byte("\n"))
			} else if child := item.FirstChild(); child != nil {
				if clines := child.Lines(); clines != nil && clines.Len() > 0 {
					segment := clines.At(0)
					line = 1 + bytes.Count(source[:segment.Start], []byte("\n"))
				}
			}

			s.addTask(content, path, title, line)
			return ast.WalkContinue, nil
		},
	)

	return nil
}

func (s *Scanner) addTask(content, path, title string, line int) {
	lowered := strings.ToLower(content)
	if !strings.HasPrefix(content, "[ ]") && !strings.HasPrefix(lowered, "[x]") {
		return
	}
	body := strings.TrimSpace(content[3:])
	if body == "" {
		return
	}

	status := StatusUnchecked
	if strings.HasPrefix(lowered, "[x]") {
		status = StatusChecked
	}

	s.tasks = append(s.tasks, Task{
		ID:      s.nextID,
		Status:  status,
		Content: body,
		Path:    path,
		Title:   title,
		Line:    line,
	})
	s.nextID++
}

var frontMatterRe = regexp.MustCompile(`(?ms)^---\n(.+?)\n---`)

// parseTitle extracts the title from YAML front matter, if any.
func parseTitle(content []byte) string {
	match := frontMatterRe.FindSubmatch(content)
	if len(match) < 2 {
		return ""
	}

	var data struct {
		Title string `yaml:"title"`
	}

	if err := yaml.Unmarshal(match[1], &data); err != nil {
		return ""
	}

	return data.Title
}

// Tasks returns the collected tasks in discovery order.
func (s *Scanner) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Pending returns only unchecked tasks.
func (s *Scanner) Pending() []Task {
	var out []Task
	for _, t := range s.tasks {
		if !t.Checked() {
			out = append(out, t)
		}
	}
	return out
}

// SortByStatus returns tasks grouped by status, unchecked first for "asc".
// Ties keep discovery order.
func (s *Scanner) SortByStatus(order string) []Task {
	tasks := s.Tasks()

	switch order {
	case "asc":
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].Status == tasks[j].Status {
				return tasks[i].ID < tasks[j].ID
			}
			return tasks[i].Status > tasks[j].Status
		})
	case "desc":
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].Status == tasks[j].Status {
				return tasks[i].ID < tasks[j].ID
			}
			return tasks[i].Status < tasks[j].Status
		})
	default:
		return nil
	}

	return tasks
}
