// Package frame holds entity-keyed predicate tables: predictions, truth,
// observations and targets all share the same key space.
package frame

import (
	"fmt"
	"sort"
	"strings"
)

const keySep = "\x1f"

// Key identifies one ground atom by its argument tuple.
type Key string

func NewKey(args ...string) Key {
	return Key(strings.Join(args, keySep))
}

func (k Key) Args() []string {
	return strings.Split(string(k), keySep)
}

// Entity is the key without its last argument. For categorical predicates such
// as hasCat(paper, category) this is the thing being labelled.
func (k Key) Entity() Key {
	s := string(k)
	i := strings.LastIndex(s, keySep)
	if i < 0 {
		return ""
	}
	return Key(s[:i])
}

// Label is the last argument of the key.
func (k Key) Label() string {
	s := string(k)
	return s[strings.LastIndex(s, keySep)+1:]
}

func (k Key) String() string {
	return "(" + strings.Join(k.Args(), ", ") + ")"
}

type Frame struct {
	Predicate string
	arity     int
	keys      []Key
	values    map[Key]float64
}

func New(predicate string) *Frame {
	return &Frame{
		Predicate: predicate,
		values:    make(map[Key]float64),
	}
}

// Set stores value for the atom args. The first row fixes the arity; later
// rows with a different argument count are rejected. A repeated atom keeps its
// original position and takes the latest value.
func (f *Frame) Set(args []string, value float64) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: atom has no arguments", f.Predicate)
	}
	if f.arity == 0 {
		f.arity = len(args)
	} else if len(args) != f.arity {
		return fmt.Errorf("%s: expected %d arguments, got %d", f.Predicate, f.arity, len(args))
	}

	k := NewKey(args...)
	if _, ok := f.values[k]; !ok {
		f.keys = append(f.keys, k)
	}
	f.values[k] = value
	return nil
}

func (f *Frame) Get(k Key) (float64, bool) {
	v, ok := f.values[k]
	return v, ok
}

// Value returns the stored value for k, or 0 when the atom is absent.
func (f *Frame) Value(k Key) float64 {
	return f.values[k]
}

func (f *Frame) Has(k Key) bool {
	_, ok := f.values[k]
	return ok
}

// Keys returns the atoms in insertion order.
func (f *Frame) Keys() []Key {
	out := make([]Key, len(f.keys))
	copy(out, f.keys)
	return out
}

// SortedKeys returns the atoms in lexical order.
func (f *Frame) SortedKeys() []Key {
	out := f.Keys()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f *Frame) Len() int {
	return len(f.keys)
}

func (f *Frame) Arity() int {
	return f.arity
}
