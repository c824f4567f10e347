package particle

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
)

// ReadFile reads a point file with rows of the form
//
//     x y z r
//
// where x, y, z are the coordinates of a primary particle's center and r is
// its radius. Blank lines and lines starting with '#' are ignored. There is
// no header.
func ReadFile(fname string) (*Set, error) {
	if err := checkColumns(fname); err != nil { return nil, err }

	cols, err := table.ReadTable(fname, []int{ 0, 1, 2, 3 }, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not read %s: %w", fname, err)
	}

	s, err := FromColumns(cols)
	if err != nil { return nil, fmt.Errorf("%s: %w", fname, err) }
	return s, nil
}

// checkColumns makes sure that every data row of fname has exactly Columns
// tokens. The table reader only looks at the columns it's asked for, so extra
// columns would otherwise slip through silently.
func checkColumns(fname string) error {
	f, err := os.Open(fname)
	if err != nil { return err }
	defer f.Close()

	scanner := bufio.NewScanner(f)
	rows := 0
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") { continue }

		if n := len(strings.Fields(text)); n != Columns {
			return fmt.Errorf(
				"%w: line %d of %s has %d columns, but %d are required",
				ErrShapeMismatch, line, fname, n, Columns,
			)
		}
		rows++
	}
	if err := scanner.Err(); err != nil { return err }

	if rows == 0 {
		return fmt.Errorf("%s: %w", fname, ErrEmptyParticleSet)
	}
	return nil
}
