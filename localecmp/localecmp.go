// Package localecmp compares strings by the collation rules of a language,
// the way String.prototype.localeCompare does in a browser, and turns such
// comparisons into asyncslice comparators.
package localecmp

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Sykander/Iterable-Async-Methods/asyncslice"
)

// Collator is safe for concurrent use.
type Collator struct {
	mu  sync.Mutex
	c   *collate.Collator
	tag language.Tag
}

// New returns a Collator for tag.
func New(tag language.Tag, opts ...collate.Option) *Collator {
	return &Collator{c: collate.New(tag, opts...), tag: tag}
}

// Parse returns a Collator for a BCP 47 locale such as "en" or "sv-SE".
func Parse(locale string, opts ...collate.Option) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("localecmp: parse locale %q: %w", locale, err)
	}
	return New(tag, opts...), nil
}

// Tag returns the language the Collator was built for.
func (c *Collator) Tag() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1 depending on whether a sorts before, with or after b.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

// By builds a comparator ordering values by the string key returns.
func By[T any](c *Collator, key func(T) string) asyncslice.Comparator[T] {
	return func(_ context.Context, a, b T) (int, error) {
		return c.Compare(key(a), key(b)), nil
	}
}
