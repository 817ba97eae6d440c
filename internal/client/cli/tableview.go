package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/avolkovs/storekeeper/internal/client/table"
)

// tableScreen describes one interactive list screen built on a table
// controller. The extra hook lets each screen add its own commands (create,
// edit, delete) on top of the shared navigation set.
type tableScreen[T any] struct {
	title  string
	reload func(ctx context.Context) ([]T, error)
	// extra handles screen-specific commands. It reports whether the command
	// was recognized and whether the dataset must be reloaded afterwards.
	extra func(ctx context.Context, cmd string, args []string) (handled, reload bool, err error)
	// extraHelp is appended to the shared help line.
	extraHelp string
}

// renderTable prints the current page of the controller as an aligned text
// table, followed by a pagination footer.
func renderTable[T any](w io.Writer, tc *table.Controller[T]) {
	cols := tc.VisibleColumns()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	fmt.Fprintln(tw, strings.Join(titles, "\t"))

	cells := make([]string, len(cols))
	for _, row := range tc.Page() {
		for i, c := range cols {
			cells[i] = c.Value(row)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	sortKey, sortDir := tc.Sort()
	footer := fmt.Sprintf("Page %d/%d, %d rows", tc.PageIndex()+1, tc.PageCount(), tc.TotalRows())
	if f := tc.Filter(); f != "" {
		footer += fmt.Sprintf(", filter %q", f)
	}
	if sortKey != "" {
		footer += fmt.Sprintf(", sort %s %s", sortKey, sortDir)
	}
	fmt.Fprintln(w, footer)
}

// runTableScreen drives the sub-REPL of one list screen until the user types
// "back". Shared commands cover filtering, sorting, paging, column
// visibility and CSV export; everything else goes to the screen's extra hook.
func runTableScreen[T any](ctx context.Context, a *App, tc *table.Controller[T], screen tableScreen[T]) error {
	rows, err := screen.reload(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	tc.SetRows(rows)

	fmt.Fprintf(a.out, "-- %s --\n", screen.title)
	renderTable(a.out, tc)

	for {
		fmt.Fprintf(a.out, "%s> ", screen.title)
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			renderTable(a.out, tc)
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			help := "Commands: filter <text>, sort <column>, next, prev, page <n>, size <n>, cols, col <column>, export <file>, refresh, back"
			if screen.extraHelp != "" {
				help += ", " + screen.extraHelp
			}
			fmt.Fprintln(a.out, help)
			continue

		case "filter":
			tc.SetFilter(strings.Join(args, " "))

		case "sort":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: sort <column>")
				continue
			}
			tc.ToggleSort(args[0])

		case "next":
			tc.NextPage()

		case "prev":
			tc.PrevPage()

		case "page":
			n, err := strconv.Atoi(strings.Join(args, ""))
			if err != nil || n < 1 {
				fmt.Fprintln(a.out, "Usage: page <number>")
				continue
			}
			tc.SetPage(n - 1)

		case "size":
			n, err := strconv.Atoi(strings.Join(args, ""))
			if err != nil {
				fmt.Fprintf(a.out, "Usage: size <n>, one of %v\n", table.PageSizes)
				continue
			}
			tc.SetPageSize(n)
			if tc.PageSize() != n {
				fmt.Fprintf(a.out, "Page size must be one of %v\n", table.PageSizes)
				continue
			}

		case "cols":
			for _, c := range tc.Columns() {
				mark := " "
				if tc.ColumnVisible(c.Key) {
					mark = "x"
				}
				fmt.Fprintf(a.out, "  [%s] %s (%s)\n", mark, c.Title, c.Key)
			}
			continue

		case "col":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: col <column>")
				continue
			}
			tc.ToggleColumn(args[0])

		case "export":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: export <file>")
				continue
			}
			if err := exportCSVFile(tc, args[0]); err != nil {
				a.printErr(err)
				continue
			}
			fmt.Fprintf(a.out, "Exported %d rows to %s\n", len(rows), args[0])
			continue

		case "refresh":
			if rows, err = screen.reload(ctx); err != nil {
				a.printErr(err)
				continue
			}
			tc.SetRows(rows)

		case "back", "quit", "exit":
			return nil

		default:
			handled, reloadAfter, err := false, false, error(nil)
			if screen.extra != nil {
				handled, reloadAfter, err = screen.extra(ctx, cmd, args)
			}
			if !handled {
				fmt.Fprintln(a.out, "Unknown command:", cmd)
				continue
			}
			if err != nil {
				continue
			}
			if reloadAfter {
				if rows, err = screen.reload(ctx); err != nil {
					a.printErr(err)
					continue
				}
				tc.SetRows(rows)
			}
		}

		renderTable(a.out, tc)
	}
}

func exportCSVFile[T any](tc *table.Controller[T], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := tc.ExportCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
