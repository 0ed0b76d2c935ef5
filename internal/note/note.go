// Package note provides the note data model: frontmatter parsing and
// serialization, tag and link extraction, and checklist handling.
package note

import (
	"regexp"
	"strings"
)

// Frontmatter keys the rest of the application assigns meaning to. The Meta
// mapping accepts arbitrary keys; these are merely the recognized ones.
const (
	KeyTitle    = "title"
	KeyCreated  = "created"
	KeyModified = "modified"
	KeyPinnedAt = "pinnedAt"
)

const fence = "---"

// Note represents one Markdown file in the vault.
type Note struct {
	Path  string
	Meta  Meta
	Body  string
	Tags  []string
	Links []string
}

// Title returns the frontmatter title, falling back to the given default.
func (n Note) Title(fallback string) string {
	if title, ok := n.Meta.Get(KeyTitle); ok && title != "" {
		return title
	}
	return fallback
}

// Pinned reports whether the note carries a pinnedAt timestamp.
func (n Note) Pinned() bool {
	_, ok := n.Meta.Get(KeyPinnedAt)
	return ok
}

var (
	tagPattern  = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// Parse splits raw note content into frontmatter metadata and body.
//
// Frontmatter is present only when the content starts with the three-byte
// fence. If an opening fence has no closing fence, the whole content is
// treated as body with empty metadata; the original implementation behaves
// this way and the permissive fallback is kept deliberately.
func Parse(content string) (Meta, string) {
	meta := Meta{}
	body := content

	if strings.HasPrefix(content, fence) {
		end := strings.Index(content[len(fence):], "\n"+fence)
		if end != -1 {
			end += len(fence)
			front := content[len(fence):end]
			body = strings.TrimSpace(content[end+len("\n"+fence):])

			for _, line := range strings.Split(front, "\n") {
				colon := strings.Index(line, ":")
				if colon <= 0 {
					continue
				}
				key := strings.TrimSpace(line[:colon])
				value := strings.TrimSpace(line[colon+1:])
				if key == "" || value == "" {
					continue
				}
				meta.Set(key, stripQuotes(value))
			}
		}
	}

	return meta, body
}

// FromContent builds a Note from raw file content, running tag and link
// extraction against the body.
func FromContent(path, content string) Note {
	meta, body := Parse(content)
	return Note{
		Path:  path,
		Meta:  meta,
		Body:  body,
		Tags:  ExtractTags(body),
		Links: ExtractLinks(body),
	}
}

// Serialize rebuilds note file content from metadata and body. Serializing
// and re-parsing yields the same meta/body split, modulo the one layer of
// value quoting Parse strips.
func Serialize(meta Meta, body string) string {
	var b strings.Builder
	b.WriteString(fence)
	b.WriteString("\n")
	for _, key := range meta.Keys() {
		value, _ := meta.Get(key)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	b.WriteString(fence)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// ExtractTags scans the body for #word tokens. Duplicates are kept; callers
// that need a set deduplicate themselves.
func ExtractTags(body string) []string {
	matches := tagPattern.FindAllStringSubmatch(body, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// ExtractLinks returns inline link labels in order of first appearance.
func ExtractLinks(body string) []string {
	matches := linkPattern.FindAllStringSubmatch(body, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, m[1])
	}
	return links
}

// stripQuotes removes one layer of surrounding single or double quotes.
func stripQuotes(value string) string {
	if value != "" && (value[0] == '"' || value[0] == '\'') {
		value = value[1:]
	}
	if value != "" {
		if last := value[len(value)-1]; last == '"' || last == '\'' {
			value = value[:len(value)-1]
		}
	}
	return value
}
