// Package loader implements the bulk-load reader for the index shell:
// a plain-text file of "key,value" lines, consumed one record at a
// time. It is an external collaborator of the B-tree engine (spec §1),
// never touching index-file internals directly.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomanathan/4348-Project-3---Git/btree"
)

// Load reads path one line at a time and inserts each "key,value" pair
// into tree. Blank lines are skipped. A malformed line or a duplicate
// key is reported to report and the line is skipped; processing
// continues past either.
func Load(tree *btree.BTree, path string, report io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, value, ok := parseLine(line)
		if !ok {
			fmt.Fprintf(report, "Invalid line in load file: %s\n", line)
			continue
		}

		if err := tree.Insert(key, value); err != nil {
			if err == btree.ErrDuplicateKey {
				fmt.Fprintf(report, "Error: key %d already exists, skipping.\n", key)
				continue
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("loader: read %s: %w", path, err)
	}
	return nil
}

// parseLine parses a "key,value" record. ok is false for anything that
// is not exactly two decimal unsigned 64-bit fields separated by a
// single comma.
func parseLine(line string) (key, value uint64, ok bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	key, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	value, err = strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return key, value, true
}
