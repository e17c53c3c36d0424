package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1ekc/gfl-pages/internal/importer"
	"github.com/1ekc/gfl-pages/internal/media"
)

func newImportCommand(cmdCtx *commandContext) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "import [reference...]",
		Short: "Register asset references and print their synthetic URLs",
		Long: `Registers each reference (a local path or remote URL) in the media
store and prints the mapping from reference to synthetic type:name URL.
References can be given as arguments or one per line via --from-file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := append([]string(nil), args...)
			if fromFile != "" {
				fileRefs, err := readRefs(fromFile)
				if err != nil {
					return err
				}
				refs = append(refs, fileRefs...)
			}
			if len(refs) == 0 {
				return fmt.Errorf("no references given")
			}

			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}
			return cmdCtx.withStore(func(store *media.Store) error {
				mapping, err := importer.New(store, logger).Import(cmd.Context(), refs)
				if err != nil {
					return err
				}

				keys := make([]string, 0, len(mapping))
				for ref := range mapping {
					keys = append(keys, ref)
				}
				sort.Strings(keys)

				rows := make([][]string, 0, len(keys))
				for _, ref := range keys {
					rows = append(rows, []string{ref, mapping[ref]})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Reference", "Synthetic URL"},
					rows,
					nil,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read references from a file, one per line")
	return cmd
}

func readRefs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference list: %w", err)
	}
	defer file.Close()

	var refs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read reference list: %w", err)
	}
	return refs, nil
}
