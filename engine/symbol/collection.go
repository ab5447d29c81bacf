package symbol

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"

	"github.com/Better-MD/better-md/core"
)

// Collection is the registry of concrete element types. Registration
// order matters: lookup is a linear scan and the first matching type wins,
// so types with broad verifiers should be registered late.
//
// A Collection is safe for concurrent lookups once populated; registering
// concurrently with active lookups is not.
type Collection struct {
	symbols []*Def
	names   *trie.Trie // registered tag names, for miss suggestions
}

// NewCollection creates a registry holding the given element types, in
// order.
func NewCollection(defs ...*Def) *Collection {
	c := &Collection{names: trie.New()}
	c.Register(defs...)
	return c
}

// Register appends element types to the collection. Registration is
// append-only; there is no duplicate detection.
func (c *Collection) Register(defs ...*Def) {
	for _, d := range defs {
		c.symbols = append(c.symbols, d)
		if d.Name != "" {
			c.names.Add(d.Name, d)
		}
	}
}

// Lookup scans the registered types in registration order and returns the
// first one matching name, either by exact tag-name equality or through
// the type's verifier. It returns nil on a miss.
func (c *Collection) Lookup(name string) *Def {
	for _, d := range c.symbols {
		if d.Name == name {
			return d
		}
		if v, ok := d.HTML.(Verifier); ok && v.Verify(name) {
			return d
		}
	}
	return nil
}

// FindSymbol is Lookup with a hard failure on a miss: the returned error
// carries code core.EMISSING and, when close registered names exist, a
// suggestion list.
func (c *Collection) FindSymbol(name string) (*Def, error) {
	if d := c.Lookup(name); d != nil {
		return d, nil
	}
	tracer().Infof("symbol %q not found in collection", name)
	if sugg := c.suggest(name); len(sugg) > 0 {
		return nil, core.Error(core.EMISSING,
			"symbol `%s` not found in collection (closest registered: %s)",
			name, strings.Join(sugg, ", "))
	}
	return nil, core.Error(core.EMISSING,
		"symbol `%s` not found in collection, it may not be supported", name)
}

// suggest returns up to three registered tag names sharing the longest
// non-empty prefix with name.
func (c *Collection) suggest(name string) []string {
	for pre := name; pre != ""; pre = pre[:len(pre)-1] {
		if !c.names.HasKeysWithPrefix(pre) {
			continue
		}
		matches := c.names.PrefixSearch(pre)
		sort.Strings(matches)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		return matches
	}
	return nil
}
