package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/core"
)

var (
	verbose    bool
	rootDir    string
	editorFlag string
	noCommit   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Write a new numbered blog post and commit it",
	Long: `quill opens your editor on a scratch file, saves what you write as the next
numbered post (content/NNNNNN.md) behind a generated header, and commits it to git.

Running quill without a subcommand is the same as 'quill new'.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: runNew,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Blog root (defaults to the nearest directory with quill.yaml or .git)")
	rootCmd.PersistentFlags().StringVar(&editorFlag, "editor", "", "Editor command (overrides config, $VISUAL and $EDITOR)")
	rootCmd.PersistentFlags().BoolVar(&noCommit, "no-commit", false, "Write the post without committing it")
}

// resolveRoot returns --root, or the nearest blog root above the working directory,
// or the working directory itself.
func resolveRoot() (string, error) {
	if rootDir != "" {
		return filepath.Abs(rootDir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, err := quill.FindRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// flagOverrides maps the persistent flags the user set onto configuration keys.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	if cmd.Flags().Changed("editor") {
		overrides["editor"] = editorFlag
	}
	if cmd.Flags().Changed("no-commit") && noCommit {
		overrides["git.enabled"] = false
	}
	return overrides
}

func loadConfig(cmd *cobra.Command) quill.Config {
	root, err := resolveRoot()
	if err != nil {
		fatal("Failed to resolve blog root", err)
	}

	cfg, err := quill.LoadConfig(root, flagOverrides(cmd))
	if err != nil {
		fatal("Failed to load configuration", err)
	}
	slog.Debug("configuration loaded", "root", cfg.Root, "file", cfg.File, "content", cfg.ContentDir())
	return cfg
}

func newService(cfg quill.Config) *core.Service {
	svc, err := quill.New(cfg, quill.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to initialize quill", err)
	}
	return svc
}
