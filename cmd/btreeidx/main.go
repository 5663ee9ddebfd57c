// Command btreeidx implements the index file shell: an interactive
// create/open/insert/search/load/print/extract/quit command loop, plus
// batch flags for scripted use.
//
// Usage:
//
//	btreeidx [index-file]
//	btreeidx --load records.csv index.idx
//	btreeidx --extract dump.csv index.idx
//	btreeidx --print index.idx
//
// The index-file argument is used only by the batch flags. Without them
// the interactive shell starts with no file open, whether or not an
// argument is given; an index is then chosen with its create or open
// command.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/tomanathan/4348-Project-3---Git/btree"
	"github.com/tomanathan/4348-Project-3---Git/extract"
	"github.com/tomanathan/4348-Project-3---Git/indexfile"
	"github.com/tomanathan/4348-Project-3---Git/loader"
	"github.com/tomanathan/4348-Project-3---Git/shell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var loadPath, extractPath string
	var doPrint bool

	cmd := &cobra.Command{
		Use:   "btreeidx [index-file]",
		Short: "Disk-resident B-tree index shell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch := loadPath != "" || extractPath != "" || doPrint
			if batch {
				if len(args) != 1 {
					return fmt.Errorf("batch flags require an index file argument")
				}
				return runBatch(args[0], loadPath, extractPath, doPrint)
			}
			return runInteractive()
		},
	}

	cmd.Flags().StringVar(&loadPath, "load", "", "bulk-load records from a CSV file into the given index")
	cmd.Flags().StringVar(&extractPath, "extract", "", "extract records from the given index into a CSV file")
	cmd.Flags().BoolVar(&doPrint, "print", false, "print records from the given index in ascending order")

	return cmd
}

func runBatch(path, loadPath, extractPath string, doPrint bool) error {
	idx, err := openOrCreate(path)
	if err != nil {
		return err
	}
	defer idx.Close()

	tree := btree.Open(idx)

	if loadPath != "" {
		if err := loader.Load(tree, loadPath, os.Stdout); err != nil {
			return err
		}
	}
	if doPrint {
		pairs, err := tree.TraverseInorder()
		if err != nil {
			return err
		}
		for _, p := range pairs {
			fmt.Printf("%d %d\n", p.Key, p.Value)
		}
	}
	if extractPath != "" {
		if err := extract.Write(tree, extractPath); err != nil {
			return err
		}
	}
	return nil
}

func openOrCreate(path string) (*indexfile.File, error) {
	if _, err := os.Stat(path); err != nil {
		return indexfile.Create(path)
	}
	return indexfile.Open(path)
}

func runInteractive() error {
	historyPath := filepath.Join(os.TempDir(), ".btreeidx_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "Enter command: ",
		HistoryFile: historyPath,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	sh := shell.New(shell.NewReadlineReader(rl), os.Stdout, os.Stderr)
	sh.Run()
	return nil
}
