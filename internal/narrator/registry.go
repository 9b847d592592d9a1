package narrator

import (
	"errors"
	"math/rand"
	"sort"
)

// Registry holds loaded response pools and provides weighted random
// line selection.
type Registry struct {
	pools  map[Category][]LineDef
	totals map[Category]int
}

// NewRegistry creates a registry from loaded pool definitions. Lines
// with non-positive weight count as weight 1.
func NewRegistry(pools []PoolDef) *Registry {
	r := &Registry{
		pools:  make(map[Category][]LineDef),
		totals: make(map[Category]int),
	}
	for _, pool := range pools {
		cat := Category(pool.Category)
		for _, line := range pool.Lines {
			if line.Weight < 1 {
				line.Weight = 1
			}
			r.pools[cat] = append(r.pools[cat], line)
			r.totals[cat] += line.Weight
		}
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded
// responses.json.
func LoadRegistry() (*Registry, error) {
	pools, err := LoadPools()
	if err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, errors.New("no response pools loaded from responses.json")
	}
	r := NewRegistry(pools)
	if r.Count(CategoryUnknown) == 0 {
		return nil, errors.New("responses.json has no unknown-category pool to fall back on")
	}
	return r, nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Pick selects a random line for the category using weighted
// probability. Categories with no pool fall back to the unknown pool;
// an empty registry returns the empty string.
func (r *Registry) Pick(rng *rand.Rand, cat Category) string {
	lines := r.pools[cat]
	total := r.totals[cat]
	if len(lines) == 0 {
		lines = r.pools[CategoryUnknown]
		total = r.totals[CategoryUnknown]
	}
	if len(lines) == 0 || total <= 0 {
		return ""
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range lines {
		cumulative += lines[i].Weight
		if roll < cumulative {
			return lines[i].Text
		}
	}
	return lines[0].Text
}

// Count returns the number of lines in the category's pool.
func (r *Registry) Count(cat Category) int {
	return len(r.pools[cat])
}

// Categories returns the sorted categories with at least one line.
func (r *Registry) Categories() []Category {
	cats := make([]Category, 0, len(r.pools))
	for cat := range r.pools {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
