// Package shell implements the interactive command loop for the index
// file: create, open, insert, search, load, print, extract, quit. It
// is a thin driver over indexfile, btree, loader, and extract — it
// never touches block-level encoding itself.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomanathan/4348-Project-3---Git/btree"
	"github.com/tomanathan/4348-Project-3---Git/extract"
	"github.com/tomanathan/4348-Project-3---Git/indexfile"
	"github.com/tomanathan/4348-Project-3---Git/loader"
)

// Shell runs the create/open/insert/search/load/print/extract/quit
// command loop against a single index file at a time.
type Shell struct {
	in  LineReader
	out io.Writer
	err io.Writer

	idx  *indexfile.File
	tree *btree.BTree
}

// New builds a Shell reading commands from in. Command output, load
// reports and user-input errors (no open file, duplicate key, invalid
// input or command) go to out; failures of file and index operations go
// to errOut. If errOut is nil, those failures are written to out.
func New(in LineReader, out, errOut io.Writer) *Shell {
	if errOut == nil {
		errOut = out
	}
	return &Shell{in: in, out: out, err: errOut}
}

// Close releases the currently open index file, if any.
func (s *Shell) Close() error {
	if s.idx == nil {
		return nil
	}
	err := s.idx.Close()
	s.idx = nil
	s.tree = nil
	return err
}

// Run executes the command loop until "quit" or end of input.
func (s *Shell) Run() {
	for {
		fmt.Fprintln(s.out, "Commands: create, open, insert, search, load, print, extract, quit")
		line, err := s.in.Prompt("Enter command: ")
		if err != nil {
			s.Close()
			return
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit":
			s.Close()
			return
		case "create":
			s.cmdCreate()
		case "open":
			s.cmdOpen()
		case "insert":
			s.cmdInsert()
		case "search":
			s.cmdSearch()
		case "load":
			s.cmdLoad()
		case "print":
			s.cmdPrint()
		case "extract":
			s.cmdExtract()
		default:
			fmt.Fprintln(s.out, "Invalid command.")
		}
	}
}

func (s *Shell) cmdCreate() {
	fname, err := s.in.Prompt("Enter new index file name: ")
	if err != nil {
		return
	}
	fname = strings.TrimSpace(fname)

	if _, statErr := os.Stat(fname); statErr == nil {
		if !s.confirmOverwrite(fname) {
			return
		}
	}

	s.Close()

	idx, err := indexfile.Create(fname)
	if err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return
	}
	s.idx = idx
	s.tree = btree.Open(idx)
}

func (s *Shell) cmdOpen() {
	fname, err := s.in.Prompt("Enter existing index file name: ")
	if err != nil {
		return
	}
	fname = strings.TrimSpace(fname)

	if _, statErr := os.Stat(fname); statErr != nil {
		fmt.Fprintln(s.err, "Error: file does not exist.")
		return
	}

	s.Close()

	idx, err := indexfile.Open(fname)
	if err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return
	}
	s.idx = idx
	s.tree = btree.Open(idx)
}

func (s *Shell) cmdInsert() {
	if !s.ensureOpen() {
		return
	}
	key, ok := s.promptUint("Enter key (unsigned int): ")
	if !ok {
		return
	}
	value, ok := s.promptUint("Enter value (unsigned int): ")
	if !ok {
		return
	}

	if err := s.tree.Insert(key, value); err != nil {
		if errors.Is(err, btree.ErrDuplicateKey) {
			fmt.Fprintln(s.out, "Error: key already exists.")
			return
		}
		fmt.Fprintf(s.err, "Error: %v\n", err)
	}
}

func (s *Shell) cmdSearch() {
	if !s.ensureOpen() {
		return
	}
	key, ok := s.promptUint("Enter key (unsigned int): ")
	if !ok {
		return
	}

	value, found, err := s.tree.Search(key)
	if err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(s.out, "Key not found.")
		return
	}
	fmt.Fprintf(s.out, "Found key %d, value %d\n", key, value)
}

func (s *Shell) cmdLoad() {
	if !s.ensureOpen() {
		return
	}
	fname, err := s.in.Prompt("Enter file name: ")
	if err != nil {
		return
	}
	fname = strings.TrimSpace(fname)

	if _, statErr := os.Stat(fname); statErr != nil {
		fmt.Fprintln(s.err, "Error: file does not exist.")
		return
	}

	if err := loader.Load(s.tree, fname, s.out); err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
	}
}

func (s *Shell) cmdPrint() {
	if !s.ensureOpen() {
		return
	}
	cur, err := s.tree.Cursor()
	if err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return
	}
	for {
		p, ok, err := cur.Next()
		if err != nil {
			fmt.Fprintf(s.err, "Error: %v\n", err)
			return
		}
		if !ok {
			return
		}
		fmt.Fprintf(s.out, "%d %d\n", p.Key, p.Value)
	}
}

func (s *Shell) cmdExtract() {
	if !s.ensureOpen() {
		return
	}
	fname, err := s.in.Prompt("Enter output file name: ")
	if err != nil {
		return
	}
	fname = strings.TrimSpace(fname)

	if _, statErr := os.Stat(fname); statErr == nil {
		if !s.confirmOverwrite(fname) {
			return
		}
	}

	if err := extract.Write(s.tree, fname); err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
	}
}

func (s *Shell) ensureOpen() bool {
	if s.idx == nil {
		fmt.Fprintln(s.out, "Error: No index file is open.")
		return false
	}
	return true
}

func (s *Shell) confirmOverwrite(fname string) bool {
	ans, err := s.in.Prompt(fmt.Sprintf("File %s exists. Overwrite? (y/n) ", fname))
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(ans)) == "y"
}

func (s *Shell) promptUint(prompt string) (uint64, bool) {
	raw, err := s.in.Prompt(prompt)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input.")
		return 0, false
	}
	return v, true
}
