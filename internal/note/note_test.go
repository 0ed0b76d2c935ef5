package note

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	content := "---\n" +
		"title: Morning pages\n" +
		"created: 2024-05-01T09:00:00Z\n" +
		"mood: 'calm'\n" +
		"source: \"inbox\"\n" +
		"---\n\n" +
		"# Morning pages\n\nSome thoughts.\n"

	meta, body := Parse(content)

	want := map[string]string{
		"title":   "Morning pages",
		"created": "2024-05-01T09:00:00Z",
		"mood":    "calm",
		"source":  "inbox",
	}
	for key, value := range want {
		got, ok := meta.Get(key)
		if !ok {
			t.Fatalf("expected key %q to be present", key)
		}
		if got != value {
			t.Errorf("meta[%q] = %q, want %q", key, got, value)
		}
	}

	wantKeys := []string{"title", "created", "mood", "source"}
	if !reflect.DeepEqual(meta.Keys(), wantKeys) {
		t.Errorf("key order = %v, want %v", meta.Keys(), wantKeys)
	}

	if body != "# Morning pages\n\nSome thoughts." {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	content := "# Just a heading\n\nNo frontmatter here.\n"

	meta, body := Parse(content)

	if meta.Len() != 0 {
		t.Errorf("expected empty meta, got %d keys", meta.Len())
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestParseMissingClosingFence(t *testing.T) {
	// An unterminated fence degrades to no frontmatter at all; the whole
	// file is treated as body.
	content := "---\ntitle: Broken\nbody text without closing fence\n"

	meta, body := Parse(content)

	if meta.Len() != 0 {
		t.Errorf("expected empty meta, got %d keys", meta.Len())
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	content := "---\n" +
		"title: Valid\n" +
		"no colon here\n" +
		": empty key\n" +
		"emptyvalue:\n" +
		"---\n\nbody\n"

	meta, _ := Parse(content)

	if meta.Len() != 1 {
		t.Fatalf("expected 1 key, got %d (%v)", meta.Len(), meta.Keys())
	}
	if title, _ := meta.Get("title"); title != "Valid" {
		t.Errorf("title = %q, want %q", title, "Valid")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	meta := NewMeta(
		"title", "Round trip",
		"created", "2024-05-01T09:00:00Z",
		"pinnedAt", "2024-05-02T10:00:00Z",
		"custom-key", "custom value",
	)
	body := "# Round trip\n\n- [ ] keep everything"

	reMeta, reBody := Parse(Serialize(meta, body))

	if !reMeta.Equal(meta) {
		t.Errorf("meta did not round-trip: got %v want %v", reMeta.Keys(), meta.Keys())
	}
	if reBody != body {
		t.Errorf("body did not round-trip: %q", reBody)
	}
}

func TestExtractTags(t *testing.T) {
	body := "Working on #project-x with #go_lang, again #project-x."

	tags := ExtractTags(body)

	// Duplicates are preserved; deduplication is the caller's concern.
	want := []string{"project-x", "go_lang", "project-x"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestExtractLinks(t *testing.T) {
	body := "See [the docs](https://example.com) and [notes](./other.md)." +
		" Bare [brackets] do not count."

	links := ExtractLinks(body)

	want := []string{"the docs", "notes"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestFromContent(t *testing.T) {
	content := "---\ntitle: Linked\n---\n\nBody with #tag and [label](target).\n"

	n := FromContent("/vault/notes/2024-05-01.md", content)

	if n.Title("fallback") != "Linked" {
		t.Errorf("title = %q", n.Title("fallback"))
	}
	if !reflect.DeepEqual(n.Tags, []string{"tag"}) {
		t.Errorf("tags = %v", n.Tags)
	}
	if !reflect.DeepEqual(n.Links, []string{"label"}) {
		t.Errorf("links = %v", n.Links)
	}
}

func TestMetaDelete(t *testing.T) {
	meta := NewMeta("a", "1", "b", "2", "c", "3")

	meta.Delete("b")

	if !reflect.DeepEqual(meta.Keys(), []string{"a", "c"}) {
		t.Errorf("keys = %v, want [a c]", meta.Keys())
	}
	if _, ok := meta.Get("b"); ok {
		t.Error("expected b to be gone")
	}

	// Deleting an absent key is a no-op.
	meta.Delete("missing")
	if meta.Len() != 2 {
		t.Errorf("len = %d, want 2", meta.Len())
	}
}

func TestSerializeWithoutBodyTrailingNoise(t *testing.T) {
	meta := NewMeta("title", "T")
	out := Serialize(meta, "body")

	if !strings.HasPrefix(out, "---\ntitle: T\n---\n\n") {
		t.Errorf("unexpected serialization prefix: %q", out)
	}
	if !strings.HasSuffix(out, "body\n") {
		t.Errorf("unexpected serialization suffix: %q", out)
	}
}
