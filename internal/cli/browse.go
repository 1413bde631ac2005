package cli

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lyrix/internal/clock"
	"lyrix/internal/ui"
	"lyrix/internal/viewer"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive lyrics browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browse(cmd.Context())
		},
	}
}

// browse runs the Bubble Tea program until the user quits
func (a *app) browse(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := a.newBus()
	defer bus.Close()

	model := ui.NewModel(ctx, ui.Options{
		Config:     a.cfg,
		Bus:        bus,
		Loader:     a.loader(),
		Resolver:   a.resolver(),
		Clipboard:  viewer.NewClipboard(a.cfg.Viewer.Clipboard),
		Downloader: viewer.DirDownloader{Dir: a.cfg.Viewer.DownloadDir},
		Clock:      clock.Real(),
	})

	log.Printf("Creating Bubble Tea program...")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("failed to run browser: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
