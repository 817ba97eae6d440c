package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string
	Brand string
	Price float64
}

func testColumns() []Column[row] {
	return []Column[row]{
		{Key: "name", Title: "Name", Value: func(r row) string { return r.Name }},
		{Key: "brand", Title: "Brand", Value: func(r row) string { return r.Brand }},
		{
			Key:   "price",
			Title: "Price",
			Value: func(r row) string { return fmt.Sprintf("%.2f", r.Price) },
			Compare: func(a, b row) int {
				switch {
				case a.Price < b.Price:
					return -1
				case a.Price > b.Price:
					return 1
				default:
					return 0
				}
			},
		},
	}
}

func testRows() []row {
	return []row{
		{"Keyboard", "Acme", 49.90},
		{"Mouse", "Acme", 19.90},
		{"Headset", "Sonic", 89.00},
		{"Webcam", "Optik", 59.00},
		{"Monitor", "Optik", 249.00},
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestController_Filter(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())

	c.SetFilter("ACME")
	assert.Equal(t, []string{"Keyboard", "Mouse"}, names(c.Page()))
	assert.Equal(t, 2, c.TotalRows())

	c.SetFilter("zzz")
	assert.Empty(t, c.Page())
	assert.Equal(t, 1, c.PageCount())

	c.SetFilter("")
	assert.Equal(t, 5, c.TotalRows())
}

func TestController_FilterResetsPage(t *testing.T) {
	c := New(testColumns())
	rows := make([]row, 30)
	for i := range rows {
		rows[i] = row{Name: fmt.Sprintf("Item %02d", i), Brand: "B", Price: float64(i)}
	}
	c.SetRows(rows)
	c.SetPage(2)
	require.Equal(t, 2, c.PageIndex())

	c.SetFilter("item")
	assert.Equal(t, 0, c.PageIndex())
}

func TestController_FilterMatchesHiddenColumns(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())
	c.ToggleColumn("brand")

	c.SetFilter("sonic")
	assert.Equal(t, []string{"Headset"}, names(c.Page()))
}

func TestController_SortCycle(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())

	c.ToggleSort("name")
	key, dir := c.Sort()
	assert.Equal(t, "name", key)
	assert.Equal(t, SortAsc, dir)
	assert.Equal(t, []string{"Headset", "Keyboard", "Monitor", "Mouse", "Webcam"}, names(c.Page()))

	c.ToggleSort("name")
	_, dir = c.Sort()
	assert.Equal(t, SortDesc, dir)
	assert.Equal(t, []string{"Webcam", "Mouse", "Monitor", "Keyboard", "Headset"}, names(c.Page()))

	c.ToggleSort("name")
	key, dir = c.Sort()
	assert.Equal(t, "", key)
	assert.Equal(t, SortNone, dir)
	assert.Equal(t, names(testRows()), names(c.Page()), "clearing the sort restores dataset order")
}

func TestController_SortSwitchColumnStartsAscending(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())

	c.ToggleSort("name")
	c.ToggleSort("name") // desc
	c.ToggleSort("price")

	key, dir := c.Sort()
	assert.Equal(t, "price", key)
	assert.Equal(t, SortAsc, dir)
	assert.Equal(t, []string{"Mouse", "Keyboard", "Webcam", "Headset", "Monitor"}, names(c.Page()))
}

func TestController_SortIsStable(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())

	// Rows with the same brand compare equal; their dataset order must hold.
	c.ToggleSort("brand")
	assert.Equal(t, []string{"Keyboard", "Mouse", "Webcam", "Monitor", "Headset"}, names(c.Page()))
}

func TestController_UnknownSortKeyIgnored(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())
	c.ToggleSort("nope")
	key, dir := c.Sort()
	assert.Equal(t, "", key)
	assert.Equal(t, SortNone, dir)
}

func TestController_Pagination(t *testing.T) {
	c := New(testColumns())
	rows := make([]row, 23)
	for i := range rows {
		rows[i] = row{Name: fmt.Sprintf("Item %02d", i), Brand: "B", Price: float64(i)}
	}
	c.SetRows(rows)

	assert.Equal(t, 3, c.PageCount())
	assert.Len(t, c.Page(), 10)

	c.NextPage()
	c.NextPage()
	assert.Equal(t, 2, c.PageIndex())
	assert.Len(t, c.Page(), 3)

	// Past the end stays on the last page.
	c.NextPage()
	assert.Equal(t, 2, c.PageIndex())

	c.PrevPage()
	c.PrevPage()
	c.PrevPage()
	c.PrevPage()
	assert.Equal(t, 0, c.PageIndex())
}

func TestController_SetPageSize(t *testing.T) {
	c := New(testColumns())
	rows := make([]row, 60)
	for i := range rows {
		rows[i] = row{Name: fmt.Sprintf("Item %02d", i), Brand: "B", Price: float64(i)}
	}
	c.SetRows(rows)

	// Rejects sizes outside the allowed set.
	c.SetPageSize(7)
	assert.Equal(t, 10, c.PageSize())

	// Page 4 starts at row 40; with 25 per page that row is on page 1.
	c.SetPage(4)
	c.SetPageSize(25)
	assert.Equal(t, 25, c.PageSize())
	assert.Equal(t, 1, c.PageIndex())
	assert.Equal(t, "Item 25", c.Page()[0].Name)

	c.SetPageSize(100)
	assert.Equal(t, 0, c.PageIndex())
	assert.Len(t, c.Page(), 60)
}

func TestController_ShrinkingDatasetClampsPage(t *testing.T) {
	c := New(testColumns())
	rows := make([]row, 25)
	for i := range rows {
		rows[i] = row{Name: fmt.Sprintf("Item %02d", i), Brand: "B", Price: float64(i)}
	}
	c.SetRows(rows)
	c.SetPage(2)

	c.SetRows(rows[:5])
	assert.Equal(t, 0, c.PageIndex())
	assert.Len(t, c.Page(), 5)
}

func TestController_ColumnVisibility(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())

	assert.Len(t, c.VisibleColumns(), 3)
	c.ToggleColumn("brand")
	assert.False(t, c.ColumnVisible("brand"))

	visible := c.VisibleColumns()
	require.Len(t, visible, 2)
	assert.Equal(t, "name", visible[0].Key)
	assert.Equal(t, "price", visible[1].Key)

	// Visibility never changes the row set.
	assert.Equal(t, 5, c.TotalRows())

	c.ToggleColumn("brand")
	assert.True(t, c.ColumnVisible("brand"))
}

func TestController_ExportCSV(t *testing.T) {
	c := New(testColumns())
	c.SetRows(testRows())

	// The export ignores filter, sort, pagination and hidden columns.
	c.SetFilter("acme")
	c.ToggleSort("price")
	c.ToggleColumn("brand")

	var buf bytes.Buffer
	require.NoError(t, c.ExportCSV(&buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"Name", "Brand", "Price"}, records[0])
	assert.Equal(t, []string{"Keyboard", "Acme", "49.90"}, records[1])
	assert.Equal(t, []string{"Monitor", "Optik", "249.00"}, records[5])
}

func TestController_EmptyDataset(t *testing.T) {
	c := New(testColumns())
	assert.Empty(t, c.Page())
	assert.Equal(t, 1, c.PageCount())
	assert.Equal(t, 0, c.PageIndex())

	var buf bytes.Buffer
	require.NoError(t, c.ExportCSV(&buf))
	assert.Equal(t, "Name,Brand,Price\n", buf.String())
}
