package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lyrix/internal/domain"
	"lyrix/internal/eventbus"
	"lyrix/internal/indexer"
)

func newIndexCmd(a *app) *cobra.Command {
	var (
		pattern string
		output  string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "index [dir]",
		Short: "Scan a lyrics directory and write the catalog file",
		Long: `Scan a directory for lyric files and write them to the catalog as
[{"filename": ..., "path": ...}], with paths relative to the catalog file.
With --watch the catalog is rewritten whenever the directory changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Index.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			if pattern == "" {
				pattern = a.cfg.Index.Pattern
			}
			if output == "" {
				output = a.cfg.Index.Output
			}

			bus := a.newBus()
			defer bus.Close()
			if watch {
				bus.Subscribe(domain.EventIndexWritten, func(e eventbus.DomainEvent) {
					if ev, ok := e.(domain.IndexWrittenEvent); ok {
						a.println(cmd, "Wrote %d entries to %s", ev.Entries, ev.Path)
					}
				})
			}

			ix, err := indexer.New(dir, pattern, output, bus)
			if err != nil {
				return err
			}
			n, err := ix.Run()
			if err != nil {
				return err
			}
			if !watch {
				a.println(cmd, "Wrote %d entries to %s", n, ix.Output())
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			a.println(cmd, "Watching %s (ctrl+c to stop)", dir)
			return ix.Watch(ctx, indexer.DefaultDebounce)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "glob for lyric files (default is index.pattern)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "catalog file to write (default is index.output)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and rewrite the catalog on changes")

	return cmd
}
