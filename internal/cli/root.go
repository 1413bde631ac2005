package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lyrix/internal/catalog"
	"lyrix/internal/config"
	"lyrix/internal/content"
	"lyrix/internal/eventbus"
)

var version = "dev"

// app holds what every command needs once flags are parsed
type app struct {
	configPath string
	logPath    string
	location   string

	configSvc config.ConfigService
	cfg       *config.Config
	logFile   io.Closer
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "lyrix",
		Short:   "Browse, search and copy .lrc lyrics from the terminal",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browse(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/lyrix/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logPath, "log", "", "log file (default is the log_file setting)")
	rootCmd.PersistentFlags().StringVarP(&a.location, "catalog", "C", "", "catalog file or URL (overrides catalog.location)")

	rootCmd.AddCommand(newBrowseCmd(a))
	rootCmd.AddCommand(newIndexCmd(a))
	rootCmd.AddCommand(newSearchCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup loads configuration and redirects the standard logger
func (a *app) setup() error {
	if a.configPath != "" {
		a.configSvc = config.NewConfigServiceAt(a.configPath)
	} else {
		a.configSvc = config.NewConfigService()
	}

	cfg, err := a.configSvc.Load()
	if err != nil {
		return err
	}
	if a.location != "" {
		cfg.Catalog.Location = a.location
	}
	a.cfg = cfg

	logPath := a.logPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Could not create log directory: %v", err)
		return nil
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Logging is best effort; keep going without it
		log.Printf("Could not open log file: %v", err)
		return nil
	}
	log.SetOutput(logFile)
	a.logFile = logFile
	log.Printf("lyrix %s starting, config %s", version, a.configSvc.Path())
	return nil
}

func (a *app) teardown() {
	if a.logFile != nil {
		log.SetOutput(os.Stderr)
		a.logFile.Close()
		a.logFile = nil
	}
}

// newBus creates an event bus whose events all go to the log
func (a *app) newBus() eventbus.EventBus {
	bus := eventbus.New()
	bus.SubscribeAll(func(e eventbus.DomainEvent) {
		log.Printf("Event %s: %+v", e.Type(), e)
	})
	return bus
}

// loader builds the catalog loader for the configured location
func (a *app) loader() *catalog.Loader {
	return catalog.NewLoader(a.cfg.Catalog.Location, a.cfg.Catalog.Suffix)
}

// resolver builds the content resolver, resolving entry paths against
// catalog.base_dir or the catalog's own directory
func (a *app) resolver() *content.Resolver {
	base := a.cfg.Catalog.BaseDir
	if base == "" {
		base = catalog.BaseOf(a.cfg.Catalog.Location)
	}

	titleMode := content.TitleDerived
	if a.cfg.Viewer.Title == "filename" {
		titleMode = content.TitleFilename
	}
	return content.NewResolver(content.NewSourceFetcher(base), a.cfg.Viewer.FormatTimestamps, titleMode)
}

func (a *app) println(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
