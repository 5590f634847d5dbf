package view

import (
	"reflect"
	"testing"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()

	want := map[string]string{
		"n":     "2",
		"x":     "-0.4",
		"y":     "0.6",
		"zmax":  "4.0",
		"niter": "256",
		"xmin":  "-1.5",
		"xmax":  "1.5",
		"ymin":  "-1.5",
		"ymax":  "1.5",
		"xsize": "600",
		"ysize": "600",
	}
	if got := s.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestStoreSet(t *testing.T) {
	tests := []struct {
		name  string
		field string
		text  string
		ok    bool
		show  string // display text after the edit
	}{
		{"float accepted", "x", "0.25", true, "0.25"},
		{"negative float", "ymin", "-2.75", true, "-2.75"},
		{"int accepted", "niter", "512", true, "512"},
		{"float coerced to int", "n", "3.7", true, "3"},
		{"scientific notation", "zmax", "1e2", true, "100.0"},
		{"whitespace tolerated", "xmax", " 2.0 ", true, "2.0"},

		{"non-numeric rejected", "x", "abc", false, "-0.4"},
		{"empty rejected", "niter", "", false, "256"},
		{"unknown field", "bogus", "1", false, ""},
		{"nan rejected", "y", "NaN", false, "0.6"},
		{"inf rejected", "zmax", "+Inf", false, "4.0"},

		{"zero exponent rejected", "n", "0", false, "2"},
		{"negative cap rejected", "niter", "-5", false, "256"},
		{"zero bailout rejected", "zmax", "0", false, "4.0"},
		{"size below 2 rejected", "xsize", "1", false, "600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if ok := s.Set(tt.field, tt.text); ok != tt.ok {
				t.Fatalf("Set(%q, %q) = %v, want %v", tt.field, tt.text, ok, tt.ok)
			}
			// A rejected edit leaves the prior value to re-display.
			if got := s.Get(tt.field); got != tt.show {
				t.Errorf("Get(%q) = %q, want %q", tt.field, got, tt.show)
			}
		})
	}
}

func TestStoreDisplayFormat(t *testing.T) {
	s := NewStore()

	// Long fractions display with twelve decimals, trailing zeros
	// trimmed; whole floats keep one decimal.
	if !s.Set("x", "0.123456789012345") {
		t.Fatal("Set rejected a valid float")
	}
	if got := s.Get("x"); got != "0.123456789012" {
		t.Errorf("Get(x) = %q, want %q", got, "0.123456789012")
	}
	if !s.Set("y", "-3") {
		t.Fatal("Set rejected a valid float")
	}
	if got := s.Get("y"); got != "-3.0" {
		t.Errorf("Get(y) = %q, want %q", got, "-3.0")
	}
}

func TestStoreResetToDefaults(t *testing.T) {
	s := NewStore()
	startup := s.Entries()

	edits := map[string]string{
		"n": "5", "x": "0.1", "y": "-0.9", "zmax": "16", "niter": "32",
		"xmin": "-0.75", "xmax": "-0.7", "ymin": "0.05", "ymax": "0.15",
		"xsize": "1024", "ysize": "768",
	}
	for name, text := range edits {
		if !s.Set(name, text) {
			t.Fatalf("Set(%q, %q) rejected", name, text)
		}
	}

	s.ResetToDefaults()
	if got := s.Entries(); !reflect.DeepEqual(got, startup) {
		t.Errorf("after reset Entries() = %v, want %v", got, startup)
	}
}

func TestStoreValidate(t *testing.T) {
	s := NewStore()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	s.Set("xmax", "-2")
	if err := s.Validate(); err == nil {
		t.Error("xmax below xmin accepted")
	}
	s.ResetToDefaults()

	s.Set("ymin", "1.5")
	if err := s.Validate(); err == nil {
		t.Error("ymin equal to ymax accepted")
	}
}

func TestFieldNames(t *testing.T) {
	want := []string{"n", "x", "y", "zmax", "niter", "xmin", "xmax", "ymin", "ymax", "xsize", "ysize"}
	if got := FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}
