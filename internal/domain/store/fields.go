package store

import (
	"fmt"
	"strings"
)

type fieldPair struct {
	column string
	value  any
}

// FieldSet accumulates the columns present in a partial-update payload as
// a single ordered list. Both the SET clause and the bound arguments are
// derived from that one list, so they cannot drift out of order.
type FieldSet struct {
	pairs []fieldPair
}

func (f *FieldSet) Set(column string, value any) {
	f.pairs = append(f.pairs, fieldPair{column: column, value: value})
}

func (f *FieldSet) Empty() bool {
	return len(f.pairs) == 0
}

func (f *FieldSet) Len() int {
	return len(f.pairs)
}

// Assignments renders "col = $n" fragments, numbering placeholders from
// start.
func (f *FieldSet) Assignments(start int) string {
	parts := make([]string, 0, len(f.pairs))
	for i, pair := range f.pairs {
		parts = append(parts, fmt.Sprintf("%s = $%d", pair.column, start+i))
	}
	return strings.Join(parts, ", ")
}

// Values returns the bound arguments in the same order as Assignments.
func (f *FieldSet) Values() []any {
	values := make([]any, 0, len(f.pairs))
	for _, pair := range f.pairs {
		values = append(values, pair.value)
	}
	return values
}
