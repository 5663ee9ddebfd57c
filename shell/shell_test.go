package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runShell(t *testing.T, script string) (*Shell, string) {
	t.Helper()
	var out bytes.Buffer
	sh := New(NewScanReader(strings.NewReader(script), &out), &out, &out)
	sh.Run()
	return sh, out.String()
}

func TestShell_CreateInsertSearch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.idx")

	script := strings.Join([]string{
		"create",
		path,
		"insert",
		"10",
		"100",
		"search",
		"10",
		"search",
		"11",
		"quit",
	}, "\n") + "\n"

	_, out := runShell(t, script)

	if !strings.Contains(out, "Found key 10, value 100") {
		t.Errorf("output missing found message, got %q", out)
	}
	if !strings.Contains(out, "Key not found.") {
		t.Errorf("output missing not-found message, got %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("index file was not created: %v", err)
	}
}

func TestShell_InsertWithoutOpenFileReportsError(t *testing.T) {
	script := "insert\nquit\n"
	_, out := runShell(t, script)
	if !strings.Contains(out, "Error: No index file is open.") {
		t.Errorf("output = %q, want ensure-open error", out)
	}
}

func TestShell_DuplicateInsertReportsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.idx")

	script := strings.Join([]string{
		"create",
		path,
		"insert",
		"5",
		"50",
		"insert",
		"5",
		"999",
		"quit",
	}, "\n") + "\n"

	_, out := runShell(t, script)
	if !strings.Contains(out, "Error: key already exists.") {
		t.Errorf("output = %q, want duplicate-key error", out)
	}
}

func TestShell_OpenMissingFileReportsError(t *testing.T) {
	script := "open\n/no/such/file.idx\nquit\n"
	_, out := runShell(t, script)
	if !strings.Contains(out, "Error: file does not exist.") {
		t.Errorf("output = %q, want missing-file error", out)
	}
}

func TestShell_PrintShowsAscendingOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.idx")

	script := strings.Join([]string{
		"create",
		path,
		"insert", "30", "300",
		"insert", "10", "100",
		"insert", "20", "200",
		"print",
		"quit",
	}, "\n") + "\n"

	_, out := runShell(t, script)

	wantOrder := []string{"10 100", "20 200", "30 300"}
	lastIdx := -1
	for _, want := range wantOrder {
		idx := strings.Index(out, want)
		if idx == -1 {
			t.Fatalf("output missing %q, got %q", want, out)
		}
		if idx < lastIdx {
			t.Fatalf("output not in ascending order: %q before index of previous entry", want)
		}
		lastIdx = idx
	}
}

func TestShell_ExtractWritesFile(t *testing.T) {
	dir := t.TempDir()
	idxPath := filepath.Join(dir, "test.idx")
	outPath := filepath.Join(dir, "out.csv")

	script := strings.Join([]string{
		"create",
		idxPath,
		"insert", "1", "10",
		"insert", "2", "20",
		"extract",
		outPath,
		"quit",
	}, "\n") + "\n"

	runShell(t, script)

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "1,10\n2,20\n" {
		t.Errorf("extracted contents = %q, want %q", got, "1,10\n2,20\n")
	}
}

func TestShell_CreateDeclinedOverwritePreservesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.idx")
	if err := os.WriteFile(path, []byte("not an index file"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	script := strings.Join([]string{
		"create",
		path,
		"n",
		"quit",
	}, "\n") + "\n"

	runShell(t, script)

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "not an index file" {
		t.Errorf("file was overwritten despite declined confirmation")
	}
}

func TestShell_InvalidCommandReportsError(t *testing.T) {
	script := "bogus\nquit\n"
	_, out := runShell(t, script)
	if !strings.Contains(out, "Invalid command.") {
		t.Errorf("output = %q, want invalid-command message", out)
	}
}
