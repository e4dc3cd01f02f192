package view

import (
	"cmp"
	"strings"
	"time"
)

// Comparator orders two records, negative when a sorts before b
type Comparator[T any] func(a, b T) int

// ByTime compares a timestamp field. Zero times sort last in both directions.
func ByTime[T any](get func(T) time.Time, desc bool) Comparator[T] {
	return func(a, b T) int {
		ta, tb := get(a), get(b)
		switch {
		case ta.IsZero() && tb.IsZero():
			return 0
		case ta.IsZero():
			return 1
		case tb.IsZero():
			return -1
		}
		c := ta.Compare(tb)
		if desc {
			return -c
		}
		return c
	}
}

// ByRank compares an enumerated field through a fixed rank table. Values
// missing from the table sort after every ranked value.
func ByRank[T any](get func(T) string, ranks map[string]int) Comparator[T] {
	rank := func(v string) int {
		if r, ok := ranks[v]; ok {
			return r
		}
		return len(ranks)
	}
	return func(a, b T) int {
		return rank(get(a)) - rank(get(b))
	}
}

// ByText compares a string field case-insensitively
func ByText[T any](get func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

// ByNumber compares an integer field, descending when desc is set
func ByNumber[T any](get func(T) int, desc bool) Comparator[T] {
	return func(a, b T) int {
		c := cmp.Compare(get(a), get(b))
		if desc {
			return -c
		}
		return c
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
