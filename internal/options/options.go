// Package options keeps the ordered list of labels shown on the wheel.
package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iburimskiy/wheel-of-luck/internal/rng"
)

var (
	ErrEmptyLabel = errors.New("options: label is empty")
	ErrDuplicate  = errors.New("options: label already present")
	ErrNotFound   = errors.New("options: label not found")
)

// Defaults is the prize list used when nothing has been saved yet.
var Defaults = []string{
	"Free Coffee", "50% Off", "Free Dessert", "Try Again",
	"VIP Treatment", "$100 Gift Card", "Free Meal",
	"10% Off", "Mystery Prize", "Free Appetizer",
	"20% Off", "Loyalty Points",
}

// List is an ordered set of unique, non-empty labels. Comparison is
// case-sensitive; surrounding whitespace is trimmed.
type List struct {
	labels []string
}

// New builds a list from labels, skipping blanks and duplicates.
func New(labels ...string) *List {
	l := &List{}
	for _, s := range labels {
		_ = l.Add(s)
	}
	return l
}

// Add appends label.
func (l *List) Add(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	if l.Contains(label) {
		return fmt.Errorf("%w: %q", ErrDuplicate, label)
	}
	l.labels = append(l.labels, label)
	return nil
}

// Remove deletes label, keeping the order of the rest.
func (l *List) Remove(label string) error {
	label = strings.TrimSpace(label)
	for i, s := range l.labels {
		if s == label {
			l.labels = append(l.labels[:i], l.labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, label)
}

// Contains reports whether label is present.
func (l *List) Contains(label string) bool {
	for _, s := range l.labels {
		if s == label {
			return true
		}
	}
	return false
}

// Replace swaps the whole list for labels, with the same filtering as New.
func (l *List) Replace(labels []string) {
	l.labels = New(labels...).labels
}

// Shuffle reorders the list in place (Fisher-Yates).
func (l *List) Shuffle(src rng.Source) {
	for i := len(l.labels) - 1; i > 0; i-- {
		j := rng.IntN(src, i+1)
		l.labels[i], l.labels[j] = l.labels[j], l.labels[i]
	}
}

// Labels returns a snapshot that the caller may keep.
func (l *List) Labels() []string {
	return append([]string(nil), l.labels...)
}

// Len returns the number of labels.
func (l *List) Len() int { return len(l.labels) }
