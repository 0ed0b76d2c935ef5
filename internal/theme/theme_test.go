package theme

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if !Valid(Default) {
		t.Fatalf("default theme %q is not a recognized preset", Default)
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	got := Get("no-such-theme")
	if got.Name != Default {
		t.Errorf("Get fallback = %q, want %q", got.Name, Default)
	}
}

func TestNamesCoverPresets(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected at least one preset")
	}
	for _, name := range names {
		if !Valid(name) {
			t.Errorf("listed name %q is not valid", name)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}
