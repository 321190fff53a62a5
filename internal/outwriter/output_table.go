package outwriter

import (
	"fmt"
	"slices"

	"github.com/huangsam/kdstats/schema"
)

// PaginateTable splits the dataset into pages of at most rowsPerPage rows,
// ordered by timestamp. Every page repeats the header.
func PaginateTable(ds schema.Dataset, rowsPerPage int) []schema.TablePage {
	keys := ds.SortedKeys()
	total := schema.PageCount(len(keys), rowsPerPage)
	pages := make([]schema.TablePage, 0, total)
	for i := range total {
		start := i * rowsPerPage
		end := min(start+rowsPerPage, len(keys))
		rows := make([][]string, 0, end-start)
		for _, k := range keys[start:end] {
			rows = append(rows, ds[k].TableRow())
		}
		pages = append(pages, schema.TablePage{
			Number: i + 1,
			Total:  total,
			Title:  fmt.Sprintf(schema.TableTitleFmt, i+1, total),
			Header: slices.Clone(schema.TableHeaders),
			Rows:   rows,
		})
	}
	return pages
}
