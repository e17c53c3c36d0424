package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1ekc/gfl-pages/internal/api"
	"github.com/1ekc/gfl-pages/internal/importer"
	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
	"github.com/1ekc/gfl-pages/internal/project"
	"github.com/1ekc/gfl-pages/internal/story"
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the editor API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			// The server mirrors its log to a file so sessions survive the
			// terminal that launched them.
			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Path:   cfg.LogPath(),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := media.Open(cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			proj, err := project.Open(cfg.Paths.ProjectDir, logger)
			if err != nil {
				return err
			}
			defer proj.Close()

			alloc := story.NewAllocator()
			doc, err := proj.LoadStory(alloc)
			if err != nil {
				return err
			}

			imp := importer.New(store, logger)
			server, err := api.NewServer(api.Options{
				Bind:     cfg.Paths.APIBind,
				Logger:   logger,
				Store:    store,
				Importer: imp,
				Project:  proj,
				Story:    doc,
				Alloc:    alloc,
			})
			if err != nil {
				return err
			}
			if err := server.Start(ctx); err != nil {
				return err
			}

			if cfg.Import.Watch {
				watcher, err := importer.NewWatcher(cfg.Import.WatchDir, store, logger)
				if err != nil {
					return err
				}
				go func() {
					if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
						logger.Error("asset watcher stopped", logging.Error(err))
					}
				}()
			}

			<-ctx.Done()
			return nil
		},
	}
}
