package tsf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEntry parses one batch list line:
//
//	<grid-x> <grid-y> <component1-path> <component2-path> <component3-path>
//
// Fields are whitespace-delimited and exactly five are required.
func ParseEntry(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Entry{}, fmt.Errorf("expected 5 fields, found %d", len(fields))
	}
	ix, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("grid-x %q: %w", fields[0], err)
	}
	iy, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("grid-y %q: %w", fields[1], err)
	}
	return Entry{
		IX:    ix,
		IY:    iy,
		Paths: [Components]string{fields[2], fields[3], fields[4]},
	}, nil
}

// Run feeds every entry in the batch list to ins, invoking onEntry (when
// non-nil) before each insertion. Blank lines and lines starting with '#'
// are skipped; any other malformed line aborts the run with an error naming
// the line number. End of input terminates the loop cleanly. Returns the
// number of entries inserted.
func Run(ins Inserter, list io.Reader, onEntry func(Entry)) (int, error) {
	sc := bufio.NewScanner(list)
	inserted := 0
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return inserted, fmt.Errorf("tsf: list line %d: %w", lineno, err)
		}
		if onEntry != nil {
			onEntry(e)
		}
		if err := ins.Insert(e); err != nil {
			return inserted, fmt.Errorf("tsf: list line %d: %w", lineno, err)
		}
		inserted++
	}
	if err := sc.Err(); err != nil {
		return inserted, err
	}
	return inserted, nil
}
