package editor

import (
	"testing"

	"github.com/spf13/viper"
)

func TestResolveOrder(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	if got := Resolve(); got != "nvim" {
		t.Errorf("default editor = %q, want nvim", got)
	}

	viper.Set("editor", "nano")
	if got := Resolve(); got != "nano" {
		t.Errorf("editor = %q, want viper setting", got)
	}

	t.Setenv("VISUAL", "vi")
	if got := Resolve(); got != "vi" {
		t.Errorf("editor = %q, want VISUAL over viper", got)
	}

	t.Setenv("EDITOR", "hx")
	if got := Resolve(); got != "hx" {
		t.Errorf("editor = %q, want EDITOR to win", got)
	}
}
