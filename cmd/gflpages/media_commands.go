package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/1ekc/gfl-pages/internal/media"
)

func newMediaCommand(cmdCtx *commandContext) *cobra.Command {
	mediaCmd := &cobra.Command{
		Use:   "media",
		Short: "Inspect and edit the media store",
	}
	mediaCmd.AddCommand(newMediaListCommand(cmdCtx))
	mediaCmd.AddCommand(newMediaAddCommand(cmdCtx))
	mediaCmd.AddCommand(newMediaRemoveCommand(cmdCtx))
	return mediaCmd
}

func parseMediaType(value string) (media.Type, error) {
	mediaType, ok := media.ParseType(value)
	if !ok {
		return "", fmt.Errorf("unknown media type %q (expected audio, background, or sprite)", value)
	}
	return mediaType, nil
}

func newMediaListCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list [type]",
		Short: "List stored media records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := media.AllTypes()
			if len(args) == 1 {
				mediaType, err := parseMediaType(args[0])
				if err != nil {
					return err
				}
				types = []media.Type{mediaType}
			}

			return cmdCtx.withStore(func(store *media.Store) error {
				var rows [][]string
				for _, mediaType := range types {
					for _, m := range store.Items(mediaType).Snapshot() {
						size := "-"
						if !m.IsLink() {
							size = fmt.Sprintf("%d B", len(m.Data))
						}
						rows = append(rows, []string{string(m.Type), m.Name, m.Value(), size, m.Link})
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Type", "Name", "URL", "Size", "Link"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func newMediaAddCommand(cmdCtx *commandContext) *cobra.Command {
	var name string
	var link string

	cmd := &cobra.Command{
		Use:   "add <type> [file]",
		Short: "Add a media record from a file or a remote link",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType, err := parseMediaType(args[0])
			if err != nil {
				return err
			}

			return cmdCtx.withStore(func(store *media.Store) error {
				ctx := cmd.Context()
				switch {
				case link != "":
					recordName := name
					if recordName == "" {
						return fmt.Errorf("--name is required with --link")
					}
					stored, err := store.AddLink(ctx, mediaType, recordName, link)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", stored.Value())
					return nil
				case len(args) == 2:
					data, err := os.ReadFile(args[1])
					if err != nil {
						return fmt.Errorf("read asset: %w", err)
					}
					recordName := name
					if recordName == "" {
						recordName = filepath.Base(args[1])
					}
					stored, err := store.AddData(ctx, mediaType, recordName, data)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", stored.Value())
					return nil
				default:
					return fmt.Errorf("either a file argument or --link is required")
				}
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Record name (defaults to the file name)")
	cmd.Flags().StringVar(&link, "link", "", "Store a remote link instead of file contents")
	return cmd
}

func newMediaRemoveCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <type> <name>",
		Short: "Delete a media record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType, err := parseMediaType(args[0])
			if err != nil {
				return err
			}
			return cmdCtx.withStore(func(store *media.Store) error {
				if err := store.Delete(cmd.Context(), mediaType, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s:%s\n", mediaType, args[1])
				return nil
			})
		},
	}
}
