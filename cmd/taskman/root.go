// Root command for the taskman CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/internal/sqlite"
	"github.com/Sole248k/Task-Management-Application/pkg/tasks"
	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// repo and store are opened by PersistentPreRunE and shared by all
// subcommands.
var (
	repo  types.Repository
	store *tasks.Store
)

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "Taskman is a single-user task tracker",
	Long: `Taskman manages daily tasks with database persistence: create, list,
update, complete, delete, filter, and sort tasks from the command line or
through an interactive menu.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.taskman)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.taskman-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(menuCmd)
}

// openStore loads config, opens the SQLite repository, and builds the
// in-memory store from it.
func openStore(cmd *cobra.Command, args []string) error {
	// Version needs no storage.
	if cmd.Name() == "version" {
		return nil
	}

	configDir := resolveConfigDir()
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	r, err := sqlite.Open(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: resolveDataDir(cfg.GetString(cfgKeyDataDir)),
	})
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	repo = r

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err = tasks.NewStore(repo, logger)
	if err != nil {
		repo.Close()
		return fmt.Errorf("load store: %w", err)
	}
	return nil
}

// closeStore releases the repository.
func closeStore(cmd *cobra.Command, args []string) error {
	if repo != nil {
		return repo.Close()
	}
	return nil
}
