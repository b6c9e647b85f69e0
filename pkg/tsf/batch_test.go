package tsf

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEntry(t *testing.T) {
	t.Parallel()

	e, err := ParseEntry("12 34 a.000 a.090 a.ver")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.IX != 12 || e.IY != 34 {
		t.Errorf("grid point: got (%d,%d) want (12,34)", e.IX, e.IY)
	}
	want := [Components]string{"a.000", "a.090", "a.ver"}
	if e.Paths != want {
		t.Errorf("paths: got %v want %v", e.Paths, want)
	}

	// Runs of whitespace and tabs collapse.
	if _, err := ParseEntry("  12\t34   a b c  "); err != nil {
		t.Errorf("whitespace handling: %v", err)
	}
}

func TestParseEntryMalformed(t *testing.T) {
	t.Parallel()

	bad := []string{
		"12 34 a b",         // too few fields
		"12 34 a b c d",     // too many fields
		"x 34 a b c",        // non-integer grid-x
		"12 y a b c",        // non-integer grid-y
		"12.5 34 a b c",     // float grid-x
	}
	for _, line := range bad {
		if _, err := ParseEntry(line); err == nil {
			t.Errorf("ParseEntry(%q): expected error", line)
		}
	}
}

// recordingInserter captures entries without touching disk.
type recordingInserter struct {
	entries []Entry
	fail    error
}

func (r *recordingInserter) Header() Header { return Header{} }

func (r *recordingInserter) Insert(e Entry) error {
	if r.fail != nil {
		return r.fail
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingInserter) Close() error { return nil }

func TestRunSkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	list := strings.NewReader(`# seismogram list
1 2 a.000 a.090 a.ver

# another comment
3 4 b.000 b.090 b.ver
`)
	ins := &recordingInserter{}
	n, err := Run(ins, list, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted count: got %d want 2", n)
	}
	if len(ins.entries) != 2 {
		t.Fatalf("entries recorded: got %d want 2", len(ins.entries))
	}
	if ins.entries[0].IX != 1 || ins.entries[1].IX != 3 {
		t.Errorf("entry order: got %+v", ins.entries)
	}
}

func TestRunMalformedLineNamesLineNumber(t *testing.T) {
	t.Parallel()

	list := strings.NewReader(`1 2 a.000 a.090 a.ver
not a valid line
3 4 b.000 b.090 b.ver
`)
	ins := &recordingInserter{}
	n, err := Run(ins, list, nil)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name line 2: %v", err)
	}
	if n != 1 {
		t.Errorf("entries before failure: got %d want 1", n)
	}
}

func TestRunInsertFailureAborts(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("disk full")
	list := strings.NewReader("1 2 a b c\n3 4 d e f\n")
	ins := &recordingInserter{fail: sentinel}
	n, err := Run(ins, list, nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
	if n != 0 {
		t.Errorf("inserted count after failure: got %d want 0", n)
	}
}

func TestRunCallback(t *testing.T) {
	t.Parallel()

	list := strings.NewReader("5 6 a b c\n")
	var seen []Entry
	ins := &recordingInserter{}
	if _, err := Run(ins, list, func(e Entry) { seen = append(seen, e) }); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(seen) != 1 || seen[0].IX != 5 || seen[0].IY != 6 {
		t.Errorf("callback entries: %+v", seen)
	}
}
