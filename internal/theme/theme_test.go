package theme

import "testing"

func TestByName(t *testing.T) {
	if got := ByName("light").Name; got != "light" {
		t.Fatalf("ByName(light) = %q", got)
	}
	if got := ByName("dark").Name; got != "dark" {
		t.Fatalf("ByName(dark) = %q", got)
	}
	if got := ByName("solarized").Name; got != "dark" {
		t.Fatalf("unknown theme should fall back to dark, got %q", got)
	}
}

func TestToggle(t *testing.T) {
	if got := Toggle(Dark()).Name; got != "light" {
		t.Fatalf("Toggle(dark) = %q", got)
	}
	if got := Toggle(Light()).Name; got != "dark" {
		t.Fatalf("Toggle(light) = %q", got)
	}
}
