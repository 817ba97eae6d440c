// Package table implements the presentation controller behind the admin list
// screens: filtering, sorting, pagination, column visibility and CSV export
// over an in-memory dataset. The controller is generic over the row type, so
// the users and products screens share one implementation.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// SortDirection is the state of the sort toggle on a column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// PageSizes are the selectable rows-per-page values.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is the page size a fresh controller starts with.
const DefaultPageSize = 10

// Column describes one column of the table.
type Column[T any] struct {
	// Key identifies the column in sort/visibility operations.
	Key string
	// Title is the header text, also used in CSV exports.
	Title string
	// Value renders the cell for a row. It drives display, filtering and
	// export alike.
	Value func(row T) string
	// Compare orders two rows for this column. When nil, rows are compared
	// by their rendered Value, case-insensitively.
	Compare func(a, b T) int
}

// Controller holds the view state of one table. Not safe for concurrent use;
// each screen owns its controller.
type Controller[T any] struct {
	columns []Column[T]
	rows    []T

	filter    string
	sortKey   string
	sortDir   SortDirection
	pageIndex int
	pageSize  int
	hidden    map[string]bool

	// view is the filtered and sorted row set the pages are cut from.
	view []T
}

// New builds a controller over the given columns. The dataset starts empty.
func New[T any](columns []Column[T]) *Controller[T] {
	return &Controller[T]{
		columns:  columns,
		pageSize: DefaultPageSize,
		hidden:   make(map[string]bool),
	}
}

// SetRows replaces the dataset, keeping filter, sort and visibility. The page
// index is clamped so the current page always exists.
func (c *Controller[T]) SetRows(rows []T) {
	c.rows = append([]T(nil), rows...)
	c.rebuild()
}

// Filter returns the current filter text.
func (c *Controller[T]) Filter() string { return c.filter }

// SetFilter applies a case-insensitive substring filter across all columns
// and resets to the first page. Visibility does not affect filtering: a match
// in a hidden column still keeps the row.
func (c *Controller[T]) SetFilter(text string) {
	c.filter = text
	c.pageIndex = 0
	c.rebuild()
}

// Sort reports the active sort column and direction.
func (c *Controller[T]) Sort() (string, SortDirection) {
	return c.sortKey, c.sortDir
}

// ToggleSort advances the sort state of the column through
// none, ascending, descending and back to none. Toggling a different column
// starts it at ascending. Unknown keys are ignored.
func (c *Controller[T]) ToggleSort(key string) {
	if c.columnByKey(key) == nil {
		return
	}
	if c.sortKey != key {
		c.sortKey = key
		c.sortDir = SortAsc
	} else {
		switch c.sortDir {
		case SortNone:
			c.sortDir = SortAsc
		case SortAsc:
			c.sortDir = SortDesc
		default:
			c.sortKey = ""
			c.sortDir = SortNone
		}
	}
	c.rebuild()
}

// PageSize returns the current rows-per-page value.
func (c *Controller[T]) PageSize() int { return c.pageSize }

// SetPageSize switches the rows-per-page value. Values outside PageSizes are
// ignored. The page index is recomputed so the first row currently shown
// stays visible.
func (c *Controller[T]) SetPageSize(size int) {
	ok := false
	for _, s := range PageSizes {
		if s == size {
			ok = true
			break
		}
	}
	if !ok || size == c.pageSize {
		return
	}
	firstRow := c.pageIndex * c.pageSize
	c.pageSize = size
	c.pageIndex = firstRow / size
	c.clampPage()
}

// PageIndex returns the zero-based index of the current page.
func (c *Controller[T]) PageIndex() int { return c.pageIndex }

// PageCount returns the number of pages; an empty dataset has one empty page.
func (c *Controller[T]) PageCount() int {
	n := (len(c.view) + c.pageSize - 1) / c.pageSize
	if n == 0 {
		n = 1
	}
	return n
}

// SetPage jumps to the given zero-based page, clamped into range.
func (c *Controller[T]) SetPage(index int) {
	c.pageIndex = index
	c.clampPage()
}

// NextPage advances one page; at the last page it stays put.
func (c *Controller[T]) NextPage() { c.SetPage(c.pageIndex + 1) }

// PrevPage goes back one page; at the first page it stays put.
func (c *Controller[T]) PrevPage() { c.SetPage(c.pageIndex - 1) }

// Page returns the rows of the current page.
func (c *Controller[T]) Page() []T {
	start := c.pageIndex * c.pageSize
	if start >= len(c.view) {
		return nil
	}
	end := start + c.pageSize
	if end > len(c.view) {
		end = len(c.view)
	}
	return c.view[start:end]
}

// TotalRows returns the number of rows after filtering.
func (c *Controller[T]) TotalRows() int { return len(c.view) }

// ToggleColumn flips the visibility of a column. Visibility is presentational
// only: it changes which cells render, never which rows match or how they
// sort.
func (c *Controller[T]) ToggleColumn(key string) {
	if c.columnByKey(key) == nil {
		return
	}
	c.hidden[key] = !c.hidden[key]
}

// ColumnVisible reports whether the column currently renders.
func (c *Controller[T]) ColumnVisible(key string) bool {
	return !c.hidden[key]
}

// VisibleColumns returns the columns that currently render, in declaration
// order.
func (c *Controller[T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(c.columns))
	for _, col := range c.columns {
		if !c.hidden[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

// Columns returns all columns in declaration order.
func (c *Controller[T]) Columns() []Column[T] {
	return append([]Column[T](nil), c.columns...)
}

// ExportCSV writes the full dataset as CSV: every column including hidden
// ones, every row regardless of the active filter, in the dataset's original
// order. The first record is the header of column titles.
func (c *Controller[T]) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(c.columns))
	for i, col := range c.columns {
		header[i] = col.Title
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(c.columns))
	for _, row := range c.rows {
		for i, col := range c.columns {
			record[i] = col.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (c *Controller[T]) columnByKey(key string) *Column[T] {
	for i := range c.columns {
		if c.columns[i].Key == key {
			return &c.columns[i]
		}
	}
	return nil
}

// rebuild recomputes the filtered and sorted view and clamps the page.
func (c *Controller[T]) rebuild() {
	c.view = c.view[:0]
	needle := strings.ToLower(c.filter)
	for _, row := range c.rows {
		if needle == "" || c.matches(row, needle) {
			c.view = append(c.view, row)
		}
	}

	if col := c.columnByKey(c.sortKey); col != nil && c.sortDir != SortNone {
		cmp := col.Compare
		if cmp == nil {
			value := col.Value
			cmp = func(a, b T) int {
				return strings.Compare(strings.ToLower(value(a)), strings.ToLower(value(b)))
			}
		}
		// Stable, so rows that compare equal keep their dataset order.
		sort.SliceStable(c.view, func(i, j int) bool {
			r := cmp(c.view[i], c.view[j])
			if c.sortDir == SortDesc {
				return r > 0
			}
			return r < 0
		})
	}
	c.clampPage()
}

func (c *Controller[T]) matches(row T, needle string) bool {
	for _, col := range c.columns {
		if strings.Contains(strings.ToLower(col.Value(row)), needle) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) clampPage() {
	if max := c.PageCount() - 1; c.pageIndex > max {
		c.pageIndex = max
	}
	if c.pageIndex < 0 {
		c.pageIndex = 0
	}
}
