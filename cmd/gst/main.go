package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitstatui/gst/internal/app"
	"github.com/gitstatui/gst/internal/config"
	"github.com/gitstatui/gst/internal/git"
	"github.com/gitstatui/gst/internal/log"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gst",
		Short: "An interactive terminal view of your git working tree",
		Long: `gst replaces the flat output of 'git status' with a navigable
terminal list: every changed path, classified and colour-coded, with the
usual j/k navigation. It never mutates the repository.`,
		SilenceUsage: true,
		Version:      version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"gst %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildStatusCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	return rootCmd
}

func buildStatusCmd() *cobra.Command {
	var repoPath string
	var debugLog string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Browse the working-tree status interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if debugLog != "" {
				cfg.DebugLog = debugLog
			}
			if cfg.DebugLog != "" {
				if err := log.SetFile(cfg.DebugLog); err == nil {
					defer func() { _ = log.Close() }()
				}
			}

			svc, err := openBackend(repoPath, cfg)
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}

			// A short TTL deduplicates the queries that the list and the
			// status bar issue within the same refresh cycle.
			cached := git.NewCachedService(svc, 2*time.Second)

			return app.Run(cached, cfg)
		},
	}

	cmd.Flags().StringVarP(&repoPath, "path", "p", ".", "Path to the git repository")
	cmd.Flags().StringVar(&debugLog, "debug", "", "Write debug logs to this file")

	return cmd
}

// openBackend selects the repository backend from config.
func openBackend(path string, cfg *config.Config) (git.Service, error) {
	switch cfg.Backend {
	case "gogit":
		return git.NewGoGitService(path)
	default:
		return git.NewCLIService(path, cfg.UntrackedFiles)
	}
}

func buildCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}
