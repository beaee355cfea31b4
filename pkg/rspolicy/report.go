package rspolicy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// blankCell is written in the role column on continuation rows, keeping the
// legacy report format byte-compatible.
const blankCell = " "

// Header returns the group's CSV header row: the role column followed by one
// column per category, in schema order.
func Header(group Group) []string {
	header := make([]string, 0, len(group.Categories)+1)
	header = append(header, RoleColumn)
	for _, cat := range group.Categories {
		header = append(header, cat.Header)
	}
	return header
}

// Rows flattens a padded table into CSV data rows. Each role contributes one
// row per padded list index; the role name appears only on its first row and
// continuation rows carry a blank placeholder in the role column.
//
// Roles are emitted in lexicographic order so repeated runs over the same
// export produce identical files. A zero-depth table yields no rows.
func Rows(group Group, table DependencyTable) [][]string {
	depth := table.Depth()
	rows := make([][]string, 0, len(table)*depth)

	for _, role := range table.Roles() {
		categories := table[role]
		for item := 0; item < depth; item++ {
			row := make([]string, 0, len(group.Categories)+1)
			if item == 0 {
				row = append(row, role)
			} else {
				row = append(row, blankCell)
			}
			for _, cat := range group.Categories {
				row = append(row, categories[cat.Key][item])
			}
			rows = append(rows, row)
		}
	}

	return rows
}

// WriteCSV writes the group's report to w: the fixed header row, then the
// flattened data rows. A table with no matches anywhere produces a valid
// header-only report.
func WriteCSV(w io.Writer, group Group, table DependencyTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header(group)); err != nil {
		return fmt.Errorf("write %s report header: %w", group.Name, err)
	}
	for _, row := range Rows(group, table) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write %s report row: %w", group.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s report: %w", group.Name, err)
	}
	return nil
}

// WriteFile writes the group's report to the file at path, creating or
// truncating it. The file handle is released on every exit path; a failed
// write surfaces the error without attempting partial-write recovery.
func WriteFile(path string, group Group, table DependencyTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file %q: %w", path, err)
	}

	if err := WriteCSV(f, group, table); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file %q: %w", path, err)
	}
	return nil
}
