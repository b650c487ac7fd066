package destinations

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyCatalog is returned by New when no destinations are configured.
// A picker without destinations could never produce a valid selection.
var ErrEmptyCatalog = errors.New("destination catalog is empty")

// Picker selects a random destination from a fixed catalog. It remembers
// the previous selection and excludes it from the next one whenever the
// catalog has more than one entry.
//
// Picker is not safe for concurrent use; the conversation loop invoking
// the destination tool is the single caller.
type Picker struct {
	catalog []string
	rng     *rand.Rand
	last    string
	hasLast bool
}

type Option func(*Picker)

// WithRand replaces the picker's random source. Tests use it to make
// selections deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(p *Picker) {
		p.rng = rng
	}
}

// New creates a Picker over a copy of the given catalog.
func New(catalog []string, opts ...Option) (*Picker, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	p := &Picker{
		catalog: append([]string(nil), catalog...),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p, nil
}

// Pick returns a uniformly random destination, excluding the previous pick
// when the catalog allows it. A single-entry catalog repeats by necessity.
func (p *Picker) Pick() string {
	eligible := p.catalog
	if p.hasLast && len(p.catalog) > 1 {
		filtered := make([]string, 0, len(p.catalog)-1)
		for _, d := range p.catalog {
			if d != p.last {
				filtered = append(filtered, d)
			}
		}
		// A catalog made entirely of duplicates of the last pick would
		// filter down to nothing; fall back to the full catalog.
		if len(filtered) > 0 {
			eligible = filtered
		}
	}

	destination := eligible[p.rng.Intn(len(eligible))]
	p.last = destination
	p.hasLast = true
	return destination
}

// Catalog returns a copy of the configured destinations.
func (p *Picker) Catalog() []string {
	return append([]string(nil), p.catalog...)
}
