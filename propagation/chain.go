package propagation

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
	"github.com/pjazdzyk/sound-dampening-analyzer/signal"
)

var (
	// ErrEmptyChain is returned when removing from a chain with no items.
	ErrEmptyChain = errors.New("propagation: chain is empty")

	// ErrIndexOutOfRange is returned for positions outside the chain.
	ErrIndexOutOfRange = errors.New("propagation: index out of range")

	// ErrNilItem is returned when a nil item is added.
	ErrNilItem = errors.New("propagation: nil item")

	// ErrDuplicateItem is returned when an item is already in the chain.
	ErrDuplicateItem = errors.New("propagation: item already in chain")
)

// Chain is an ordered flow path of acoustic items, upstream first.
type Chain struct {
	items []*signal.Item
}

// New creates a chain of items in flow order and propagates through it.
func New(items ...*signal.Item) (*Chain, error) {
	c := &Chain{}

	err := c.AppendAll(items...)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Len returns the number of items.
func (c *Chain) Len() int { return len(c.items) }

// At returns the item at position i.
func (c *Chain) At(i int) (*signal.Item, error) {
	if i < 0 || i >= len(c.items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.items))
	}

	return c.items[i], nil
}

// Items returns the items in flow order. The slice is a copy; the
// items are shared.
func (c *Chain) Items() []*signal.Item {
	return slices.Clone(c.items)
}

// All iterates over positions and items in flow order.
func (c *Chain) All() iter.Seq2[int, *signal.Item] {
	return func(yield func(int, *signal.Item) bool) {
		for i, it := range c.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Output returns the last item's outgoing spectrum, or the zero
// spectrum for an empty chain.
func (c *Chain) Output() octave.Spectrum {
	if len(c.items) == 0 {
		return octave.Spectrum{}
	}

	return c.items[len(c.items)-1].Outgoing()
}

// Append adds an item at the downstream end.
func (c *Chain) Append(it *signal.Item) error {
	return c.InsertAt(len(c.items), it)
}

// AppendAll adds items at the downstream end in order. Nothing is added
// unless every item is acceptable.
func (c *Chain) AppendAll(items ...*signal.Item) error {
	for i, it := range items {
		err := c.check(it)
		if err != nil {
			return err
		}

		if slices.Contains(items[:i], it) {
			return fmt.Errorf("%w: %q", ErrDuplicateItem, it.Name())
		}
	}

	c.items = append(c.items, items...)

	return c.RecalculateAll()
}

// InsertAt inserts an item before position i. i == Len appends.
func (c *Chain) InsertAt(i int, it *signal.Item) error {
	if i < 0 || i > len(c.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.items))
	}

	err := c.check(it)
	if err != nil {
		return err
	}

	c.items = slices.Insert(c.items, i, it)

	return c.RecalculateAll()
}

// RemoveLast detaches and returns the downstream-most item.
func (c *Chain) RemoveLast() (*signal.Item, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyChain
	}

	return c.RemoveAt(len(c.items) - 1)
}

// RemoveAt detaches and returns the item at position i. The removed
// item keeps its spectra.
func (c *Chain) RemoveAt(i int) (*signal.Item, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyChain
	}

	if i < 0 || i >= len(c.items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.items))
	}

	it := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)

	return it, c.RecalculateAll()
}

// Clear detaches and returns all items.
func (c *Chain) Clear() []*signal.Item {
	items := c.items
	c.items = nil

	return items
}

// RecalculateAll propagates outgoing spectra downstream, in order.
// Call it after changing an item's spectra from outside the chain.
func (c *Chain) RecalculateAll() error {
	for i := 1; i < len(c.items); i++ {
		err := c.items[i].SetIncoming(c.items[i-1].Outgoing())
		if err != nil {
			return fmt.Errorf("propagation: item %d (%s): %w", i, c.items[i].Name(), err)
		}
	}

	return nil
}

func (c *Chain) check(it *signal.Item) error {
	if it == nil {
		return ErrNilItem
	}

	if slices.Contains(c.items, it) {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, it.Name())
	}

	return nil
}

// String renders every item in flow order.
func (c *Chain) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "chain of %d items\n", len(c.items))

	for i, it := range c.items {
		fmt.Fprintf(&b, "%d. %s", i+1, it)
	}

	return b.String()
}
