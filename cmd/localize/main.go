package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"localize/internal/app"
	"localize/internal/config"
	"localize/internal/domain"
	appErrors "localize/internal/errors"
	"localize/internal/infra/fs"
	"localize/internal/logging"
	"localize/internal/presentation"
	"localize/internal/settings"
	"localize/internal/tui"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "localize [folders...]",
	Short: "Copy render folders from a source root to local storage",
	Long: `localize bulk-copies folders from a source root into the mirrored
location under a destination root, then renames each fully-copied source
folder with an underscore prefix to mark it as migrated.

Without --no-tui an interactive shell collects the folder list and the two
roots; both roots are remembered between runs.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Folders = args
		return run(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&cfg.SourceRoot, "source-root", "s", "", "common ancestor of all source folders")
	rootCmd.Flags().StringVarP(&cfg.DestinationRoot, "destination-root", "t", "", "root the relative structure is mirrored under")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every file copy")
	rootCmd.Flags().BoolVar(&cfg.NoTUI, "no-tui", false, "run headless with a plain progress bar")
	rootCmd.Flags().BoolVar(&cfg.ExtensionOnly, "ext-only", false, "legacy matching: only copy files whose name carries an extension")
	rootCmd.Flags().StringVar(&cfg.SettingsFile, "settings-file", settings.DefaultPath(), "where the two roots are persisted")
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := settings.NewStore(cfg.SettingsFile)
	cfg.ApplyFallbacks(store.Load())

	filesystem := fs.OSFS{}

	if cfg.NoTUI {
		return runPlain(ctx, store, filesystem)
	}
	return runTUI(ctx, store, filesystem)
}

func runPlain(ctx context.Context, store settings.Store, filesystem fs.OSFS) error {
	if len(cfg.Folders) == 0 {
		return fmt.Errorf("at least one folder is required with --no-tui")
	}
	if err := cfg.Validate(filesystem); err != nil {
		exitWithError(appErrors.Wrap(appErrors.InvalidConfig, "config", "", err))
	}
	saveRoots(store)

	logger := logging.New(os.Stdout, cfg.Verbose)
	worker := newWorker(filesystem, logger)

	events := worker.Run(ctx, cfg.Job())
	res := presentation.RunPlain(events)

	printer := presentation.Printer{Writer: os.Stdout}
	printer.PrintResult(res)

	if res.Aborted != nil {
		exitWithError(appErrors.Wrap(appErrors.IOFailure, "copy", cfg.SourceRoot, res.Aborted))
	}
	return nil
}

func runTUI(ctx context.Context, store settings.Store, filesystem fs.OSFS) error {
	// Log lines would tear the rendered screen.
	logger := logging.Discard()
	worker := newWorker(filesystem, logger)
	scanner := worker.Scanner

	model := tui.NewModel(tui.Config{
		SourceRoot:      cfg.SourceRoot,
		DestinationRoot: cfg.DestinationRoot,
		Folders:         cfg.Folders,
		StartJob: func(job domain.Job) (<-chan app.Event, error) {
			jobCfg := cfg
			jobCfg.SourceRoot = job.SourceRoot
			jobCfg.DestinationRoot = job.DestinationRoot
			jobCfg.Folders = job.Folders
			if err := jobCfg.Validate(filesystem); err != nil {
				return nil, err
			}
			return worker.Run(ctx, job), nil
		},
		SaveSettings: func(sourceRoot, destinationRoot string) error {
			return store.Save(settings.Settings{
				SourceRoot:      sourceRoot,
				DestinationRoot: destinationRoot,
			})
		},
		FolderSize: scanner.TotalSize,
	})

	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil && !m.Quitting {
		exitWithError(appErrors.Wrap(appErrors.IOFailure, "copy", cfg.SourceRoot, m.Err))
	}
	return nil
}

func newWorker(filesystem fs.OSFS, logger logging.Logger) *app.Worker {
	return &app.Worker{
		FS: filesystem,
		Scanner: app.Scanner{
			FS:            filesystem,
			ExtensionOnly: cfg.ExtensionOnly,
			Logger:        logger,
		},
		Logger: logger,
	}
}

func saveRoots(store settings.Store) {
	// Best effort, same as the interactive shell on every edit.
	_ = store.Save(settings.Settings{
		SourceRoot:      cfg.SourceRoot,
		DestinationRoot: cfg.DestinationRoot,
	})
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
