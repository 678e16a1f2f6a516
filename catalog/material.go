package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

var (
	// ErrUnknownKey is returned when no entry matches a lookup.
	ErrUnknownKey = errors.New("catalog: unknown key")

	// ErrInvalidEntry is returned when an entry cannot be added.
	ErrInvalidEntry = errors.New("catalog: invalid entry")
)

// Material is a named per-band coefficient table, optionally restricted
// to a size bracket (SizeFrom, SizeTo] in metres. Absorbing materials use
// it for absorption coefficients, bend tables for attenuation in dB.
type Material struct {
	Name         string
	Description  string
	SizeFrom     float64
	SizeTo       float64
	Coefficients octave.Spectrum
}

// Contains reports whether size falls into the bracket (SizeFrom, SizeTo].
func (m Material) Contains(size float64) bool {
	return size > m.SizeFrom && size <= m.SizeTo
}

func (m Material) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}

	if math.IsNaN(m.SizeFrom) || math.IsNaN(m.SizeTo) || m.SizeFrom < 0 || m.SizeTo < m.SizeFrom {
		return fmt.Errorf("%w: %s: size bracket (%g, %g]", ErrInvalidEntry, m.Name, m.SizeFrom, m.SizeTo)
	}

	err := m.Coefficients.Validate()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEntry, m.Name, err)
	}

	return nil
}

// Repository is an ordered in-memory collection of [Material] entries.
// Several entries may share a name when they cover different size brackets.
type Repository struct {
	entries []Material
}

// NewRepository returns a repository holding copies of the given entries.
// Entries are not validated; use [Repository.Add] for untrusted input.
func NewRepository(entries ...Material) *Repository {
	return &Repository{entries: slices.Clone(entries)}
}

// Len returns the number of entries, counting every size bracket.
func (r *Repository) Len() int { return len(r.entries) }

// Lookup returns the first entry named name.
func (r *Repository) Lookup(name string) (Material, error) {
	for _, m := range r.entries {
		if m.Name == name {
			return m, nil
		}
	}

	return Material{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// LookupBySize returns the entry named name whose bracket contains size.
func (r *Repository) LookupBySize(name string, size float64) (Material, error) {
	for _, m := range r.entries {
		if m.Name == name && m.Contains(size) {
			return m, nil
		}
	}

	return Material{}, fmt.Errorf("%w: %q for size %g", ErrUnknownKey, name, size)
}

// Add appends a user-defined entry.
func (r *Repository) Add(m Material) error {
	err := m.validate()
	if err != nil {
		return err
	}

	r.entries = append(r.entries, m)

	return nil
}

// Remove deletes every entry named name.
func (r *Repository) Remove(name string) error {
	n := len(r.entries)

	r.entries = slices.DeleteFunc(r.entries, func(m Material) bool { return m.Name == name })
	if len(r.entries) == n {
		return fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}

	return nil
}

// Names returns the distinct entry names in insertion order.
func (r *Repository) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, m := range r.entries {
		if !slices.Contains(names, m.Name) {
			names = append(names, m.Name)
		}
	}

	return names
}

// String lists the entries one per line.
func (r *Repository) String() string {
	var b strings.Builder
	for _, m := range r.entries {
		fmt.Fprintf(&b, "  %-25s  %-55s  %s\n", m.Name, m.Coefficients.Format(3), m.Description)
	}

	return b.String()
}
