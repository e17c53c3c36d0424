package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1ekc/gfl-pages/internal/project"
	"github.com/1ekc/gfl-pages/internal/story"
)

func newStoryCommand(cmdCtx *commandContext) *cobra.Command {
	storyCmd := &cobra.Command{
		Use:   "story",
		Short: "Inspect and initialize the story document",
	}
	storyCmd.AddCommand(newStoryShowCommand(cmdCtx))
	storyCmd.AddCommand(newStoryInitCommand(cmdCtx))
	return storyCmd
}

func (c *commandContext) withProject(fn func(*project.Project) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	proj, err := project.Open(cfg.Paths.ProjectDir, logger)
	if err != nil {
		return err
	}
	defer proj.Close()
	return fn(proj)
}

func newStoryShowCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the story lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withProject(func(proj *project.Project) error {
				doc, err := proj.LoadStory(story.NewAllocator())
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(doc.Lines))
				for _, line := range doc.Lines {
					rows = append(rows, []string{line.LineID(), string(line.Type()), describeLine(line)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Type", "Content"},
					rows,
					nil,
				))
				return nil
			})
		},
	}
}

func describeLine(line story.Line) string {
	switch l := line.(type) {
	case *story.TextLine:
		if l.Narrator != "" {
			return l.Narrator + ": " + l.Text
		}
		return l.Text
	case *story.SceneLine:
		return fmt.Sprintf("%s = %s", l.Scene, l.Media)
	case *story.OptionLine:
		parts := make([]string, 0, len(l.Options))
		for _, opt := range l.Options {
			parts = append(parts, opt.Key)
		}
		return strings.Join(parts, " | ")
	default:
		return ""
	}
}

func newStoryInitCommand(cmdCtx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty story document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withProject(func(proj *project.Project) error {
				if !overwrite {
					if _, err := os.Stat(proj.StoryPath()); err == nil {
						return fmt.Errorf("story already exists at %s (use --overwrite to replace it)", proj.StoryPath())
					}
				}
				if err := proj.SaveStory(story.New()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", proj.StoryPath())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing story document")
	return cmd
}
