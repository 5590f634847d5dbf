package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/marvec/juliabrot"
)

// Kind is the coercion applied to a field's entry text.
type Kind int

const (
	Int Kind = iota
	Float
)

// values holds every named parameter behind the UI entries: the
// fractal parameters on the left panel and the viewport bounds and
// resolution on the right one.
type values struct {
	N    int
	X, Y float64
	Zmax float64

	Niter int

	Xmin, Xmax float64
	Ymin, Ymax float64

	Xsize, Ysize int
}

// Store is the name-addressed parameter set. Edits arrive as raw entry
// text and are parsed and range-checked before they touch a field; a
// failed edit leaves the prior value in place so the UI can re-display
// it. The value set captured at construction backs Reset.
type Store struct {
	values
	defaults values
}

// field describes one entry: its display name, coercion kind, typed
// accessors, and the acceptance check applied on top of the numeric
// parse. Keeping the table explicit keeps every field access
// statically typed.
type field struct {
	name string
	kind Kind
	get  func(*values) float64
	set  func(*values, float64)
	ok   func(float64) bool
}

func positive(v float64) bool { return v > 0 }
func atLeast1(v float64) bool { return v >= 1 }
func atLeast2(v float64) bool { return v >= 2 }
func anyValue(v float64) bool { return true }

// fields is ordered as the entries appear in the UI panels.
var fields = []field{
	{"n", Int, func(p *values) float64 { return float64(p.N) }, func(p *values, v float64) { p.N = int(v) }, atLeast1},
	{"x", Float, func(p *values) float64 { return p.X }, func(p *values, v float64) { p.X = v }, anyValue},
	{"y", Float, func(p *values) float64 { return p.Y }, func(p *values, v float64) { p.Y = v }, anyValue},
	{"zmax", Float, func(p *values) float64 { return p.Zmax }, func(p *values, v float64) { p.Zmax = v }, positive},
	{"niter", Int, func(p *values) float64 { return float64(p.Niter) }, func(p *values, v float64) { p.Niter = int(v) }, atLeast1},
	{"xmin", Float, func(p *values) float64 { return p.Xmin }, func(p *values, v float64) { p.Xmin = v }, anyValue},
	{"xmax", Float, func(p *values) float64 { return p.Xmax }, func(p *values, v float64) { p.Xmax = v }, anyValue},
	{"ymin", Float, func(p *values) float64 { return p.Ymin }, func(p *values, v float64) { p.Ymin = v }, anyValue},
	{"ymax", Float, func(p *values) float64 { return p.Ymax }, func(p *values, v float64) { p.Ymax = v }, anyValue},
	{"xsize", Int, func(p *values) float64 { return float64(p.Xsize) }, func(p *values, v float64) { p.Xsize = int(v) }, atLeast2},
	{"ysize", Int, func(p *values) float64 { return float64(p.Ysize) }, func(p *values, v float64) { p.Ysize = int(v) }, atLeast2},
}

func lookupField(name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// FieldNames lists the recognized parameter names in UI order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// displayDigits is the float precision shown in entries.
const displayDigits = 12

// NewStore returns a store seeded with the application's startup values
// and captures them as the reset defaults.
func NewStore() *Store {
	s := &Store{values: values{
		N:     juliabrot.DefaultParams.N,
		X:     real(juliabrot.DefaultParams.C),
		Y:     imag(juliabrot.DefaultParams.C),
		Zmax:  juliabrot.DefaultParams.Zmax,
		Niter: juliabrot.DefaultParams.Niter,
		Xmin:  juliabrot.DefaultRegion.Xmin,
		Xmax:  juliabrot.DefaultRegion.Xmax,
		Ymin:  juliabrot.DefaultRegion.Ymin,
		Ymax:  juliabrot.DefaultRegion.Ymax,
		Xsize: 600,
		Ysize: 600,
	}}
	s.defaults = s.values
	return s
}

// Set parses text for the named field. On a successful parse and range
// check the field is updated and true is returned; otherwise the field
// keeps its prior value and false is returned. Unknown names are
// rejected the same way.
func (s *Store) Set(name, text string) bool {
	f, found := lookupField(name)
	if !found {
		return false
	}
	// Coerce through float first so "3.7" is accepted for an int
	// field and truncated.
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if f.kind == Int {
		v = math.Trunc(v)
	}
	if !f.ok(v) {
		return false
	}
	f.set(&s.values, v)
	return true
}

// Get returns the display text for the named field: integers bare,
// floats with up to displayDigits decimals, trailing zeros trimmed.
func (s *Store) Get(name string) string {
	f, found := lookupField(name)
	if !found {
		return ""
	}
	v := f.get(&s.values)
	if f.kind == Int {
		return strconv.Itoa(int(v))
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strings.TrimRight(strconv.FormatFloat(v, 'f', displayDigits, 64), "0")
}

// Entries returns the display text of every field, keyed by name.
func (s *Store) Entries() map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.name] = s.Get(f.name)
	}
	return m
}

// ResetToDefaults restores every field to its startup-captured value.
func (s *Store) ResetToDefaults() {
	s.values = s.defaults
}

// Region assembles the viewport bound fields.
func (s *Store) Region() juliabrot.Region {
	return juliabrot.Region{Xmin: s.Xmin, Xmax: s.Xmax, Ymin: s.Ymin, Ymax: s.Ymax}
}

// SetRegion writes new bounds back into the bound fields, keeping the
// entries in sync after a zoom gesture.
func (s *Store) SetRegion(r juliabrot.Region) {
	s.Xmin, s.Xmax, s.Ymin, s.Ymax = r.Xmin, r.Xmax, r.Ymin, r.Ymax
}

// Params assembles the fractal parameter fields.
func (s *Store) Params() juliabrot.Params {
	return juliabrot.Params{
		N:     s.N,
		C:     complex(s.X, s.Y),
		Zmax:  s.Zmax,
		Niter: s.Niter,
	}
}

// Validate checks the cross-field invariants that single edits cannot:
// the bound pairs must describe a region with positive extent.
func (s *Store) Validate() error {
	if s.Xmax <= s.Xmin {
		return fmt.Errorf("bounds xmin=%g xmax=%g: xmax must exceed xmin", s.Xmin, s.Xmax)
	}
	if s.Ymax <= s.Ymin {
		return fmt.Errorf("bounds ymin=%g ymax=%g: ymax must exceed ymin", s.Ymin, s.Ymax)
	}
	return nil
}
