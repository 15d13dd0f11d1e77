package profile

import (
	"sort"

	"edacli/internal/dataset"
)

// CategoryCount is one distinct value and its occurrence count.
type CategoryCount struct {
	Value string
	Count int
}

// ColumnCategories holds the top values of one categorical column.
type ColumnCategories struct {
	Column string
	Top    []CategoryCount
}

// TopCategories computes the k most frequent non-missing values for each of
// the given columns, in the order the columns are passed. Counts are
// non-increasing; ties keep first-occurrence order in the source data.
func TopCategories(t *dataset.Table, columns []string, k int) []ColumnCategories {
	if k <= 0 {
		return nil
	}
	out := make([]ColumnCategories, 0, len(columns))
	for _, name := range columns {
		c, found := t.Column(name)
		if !found {
			continue
		}
		out = append(out, ColumnCategories{Column: name, Top: topValues(c, k)})
	}
	return out
}

func topValues(c *dataset.Column, k int) []CategoryCount {
	type entry struct {
		count int
		first int
	}
	counts := make(map[string]*entry)
	for i, cell := range c.Cells {
		if c.Missing[i] {
			continue
		}
		e := counts[cell]
		if e == nil {
			counts[cell] = &entry{count: 1, first: i}
			continue
		}
		e.count++
	}

	vals := make([]string, 0, len(counts))
	for v := range counts {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool {
		a, b := counts[vals[i]], counts[vals[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.first < b.first
	})
	if len(vals) > k {
		vals = vals[:k]
	}

	top := make([]CategoryCount, len(vals))
	for i, v := range vals {
		top[i] = CategoryCount{Value: v, Count: counts[v].count}
	}
	return top
}
