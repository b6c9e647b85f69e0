package seis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleTrace() *Trace {
	return &Trace{
		Stat:    "s0421",
		Comp:    "090",
		NT:      5,
		DT:      0.025,
		Hr:      1,
		Min:     30,
		Sec:     12.5,
		Edist:   84.2,
		Az:      271.5,
		Baz:     91.5,
		Samples: []float32{0.5, -1.25, 0, 3.75, -0.001},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.seis")
	want := sampleTrace()
	if err := Write(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path, true)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Stat != want.Stat || got.Comp != want.Comp {
		t.Errorf("identity: got %q/%q want %q/%q", got.Stat, got.Comp, want.Stat, want.Comp)
	}
	if got.NT != want.NT || got.DT != want.DT {
		t.Errorf("timing: got nt=%d dt=%g want nt=%d dt=%g", got.NT, got.DT, want.NT, want.DT)
	}
	if got.Hr != want.Hr || got.Min != want.Min || got.Sec != want.Sec {
		t.Errorf("start time: got %d:%d:%g want %d:%d:%g",
			got.Hr, got.Min, got.Sec, want.Hr, want.Min, want.Sec)
	}
	if got.Edist != want.Edist || got.Az != want.Az || got.Baz != want.Baz {
		t.Errorf("geometry fields differ: %+v", got)
	}
	if len(got.Samples) != len(want.Samples) {
		t.Fatalf("sample count: got %d want %d", len(got.Samples), len(want.Samples))
	}
	for i := range got.Samples {
		if got.Samples[i] != want.Samples[i] {
			t.Errorf("sample %d: got %g want %g", i, got.Samples[i], want.Samples[i])
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.txt")
	want := sampleTrace()
	// Enough samples to span multiple six-per-line rows.
	want.Samples = []float32{1, 2, 3, 4, 5, 6, 7, 8}
	want.NT = 8
	if err := WriteText(path, want); err != nil {
		t.Fatalf("write text: %v", err)
	}

	got, err := Read(path, false)
	if err != nil {
		t.Fatalf("read text: %v", err)
	}
	if got.Stat != want.Stat || got.Comp != want.Comp {
		t.Errorf("identity: got %q/%q", got.Stat, got.Comp)
	}
	if got.NT != want.NT || got.DT != want.DT {
		t.Errorf("timing: got nt=%d dt=%g", got.NT, got.DT)
	}
	for i := range want.Samples {
		if got.Samples[i] != want.Samples[i] {
			t.Errorf("sample %d: got %g want %g", i, got.Samples[i], want.Samples[i])
		}
	}
}

func TestTextHeaderTrailingFieldsOptional(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.txt")
	body := "s001 ver\n3 0.05\n0.1 0.2 0.3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path, false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.NT != 3 || got.DT != 0.05 {
		t.Errorf("timing: got nt=%d dt=%g", got.NT, got.DT)
	}
	if got.Hr != 0 || got.Sec != 0 {
		t.Errorf("omitted fields must stay zero: %+v", got)
	}
}

func TestBinaryTruncatedSamples(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.seis")
	if err := Write(path, sampleTrace()); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Cut the last sample short.
	if err := os.Truncate(path, binHeaderSize+5*4-2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	_, err := Read(path, true)
	if err == nil {
		t.Fatal("expected error for truncated samples")
	}
	if !strings.Contains(err.Error(), "truncated") {
		t.Errorf("error: %v", err)
	}
}

func TestBinaryShortHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.seis")
	if err := os.WriteFile(path, make([]byte, binHeaderSize-1), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Read(path, true); err == nil {
		t.Fatal("expected error for short header")
	}
}

func TestTextSampleCountMismatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.txt")
	body := "s001 000\n5 0.05\n0.1 0.2 0.3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Read(path, false)
	if err == nil {
		t.Fatal("expected error for missing samples")
	}
	if !strings.Contains(err.Error(), "declares 5") {
		t.Errorf("error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tr := sampleTrace()
	if err := tr.Validate(); err != nil {
		t.Errorf("valid trace rejected: %v", err)
	}

	tr = sampleTrace()
	tr.NT = 3 // does not match len(Samples)
	if err := tr.Validate(); err == nil {
		t.Error("mismatched sample count accepted")
	}

	tr = sampleTrace()
	tr.Stat = "station-name-too-long"
	if err := tr.Validate(); err == nil {
		t.Error("overlong station name accepted")
	}
}
