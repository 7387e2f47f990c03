package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"keep-import/config"
	"keep-import/internal/note"
	"keep-import/internal/note/delivery/cli"
	keepRepo "keep-import/internal/note/repository/keep"
	memosRepo "keep-import/internal/note/repository/memos"
	"keep-import/internal/note/usecase"
	"keep-import/pkg/log"
)

var Version = "dev"

type rootFlags struct {
	configFile string
	assumeYes  bool
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "keep-import <memos_url> <keep_folder>",
		Short:   "Import Google Keep notes to Memos with original timestamps preserved",
		Example: "  MEMOS_TOKEN=eyJhbG... keep-import https://memos.example.com ~/Takeout/Keep",
		Version: Version,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for argument errors.
			cmd.SilenceUsage = true
			return runImport(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "Config file (default: config.yaml in ./config, . or ~/.config/keep-import)")
	cmd.Flags().BoolVarP(&flags.assumeYes, "yes", "y", false, "Import without asking for confirmation")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Format notes and report what would be imported without calling Memos")

	return cmd
}

func runImport(cmd *cobra.Command, args []string, flags *rootFlags) error {
	// 1. Configuration
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: flags.configFile,
		EnvFile:    ".env",
		MemosURL:   args[0],
		Folder:     args[1],
		AssumeYes:  flags.assumeYes,
		DryRun:     flags.dryRun,
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := log.WithRunID(cmd.Context(), uuid.NewString())
	logger.Infof(ctx, "Memos URL: %s", cfg.Memos.URL)

	// 3. Repositories
	memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken,
		memosRepo.WithTimeout(cfg.Memos.Timeout),
		memosRepo.WithRateLimit(cfg.Memos.RequestsPerSecond),
	)
	memosRepository := memosRepo.New(memosClient, logger)
	exportRepository := keepRepo.New(afero.NewOsFs(), logger)

	// 4. UseCase and delivery
	confirmer := cli.NewConfirmer(os.Stdin, cmd.OutOrStdout(), cfg.Import.AssumeYes)
	uc := usecase.New(logger, exportRepository, memosRepository, confirmer)
	handler := cli.New(logger, uc, cmd.OutOrStdout())

	// 5. Run
	return handler.Run(ctx, note.ImportInput{
		Folder: cfg.Import.Folder,
		DryRun: cfg.Import.DryRun,
	})
}
