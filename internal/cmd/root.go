package cmd

import (
	"github.com/harrison/dir2md/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for dir2md
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir2md <directory>",
		Short: "Generate a markdown file with contents of files from a directory",
		Long: `dir2md walks a directory tree and writes one Markdown document containing
every selected file, each under a "## <relative/path>" heading and wrapped in
a fenced code block tagged with the file's extension.

Directories named node_modules, __pycache__, .git, .vscode and .idea are
skipped unless --ignore replaces that list. Files larger than --max-size
megabytes are skipped with a warning.

Defaults can be set in .dir2md.yaml (or the file given with --config) and
through DIR2MD_LOG_LEVEL, DIR2MD_LOG_DIR and DIR2MD_MAX_SIZE. CLI flags
override both.

Examples:
  # Snapshot the current project into output.md
  dir2md .

  # Only Go and Markdown files, written to docs/snapshot.md
  dir2md ./src -t .go .md -o docs/snapshot.md

  # Top-level files only, 2 MB ceiling
  dir2md ./src -nr -m 2

  # Ignore nothing at all
  dir2md . --ignore`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE:    runCommand,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("output", "o", "output.md", "Output markdown file")
	cmd.Flags().StringSliceP("types", "t", nil, "File extensions to include (e.g., -t .py .txt or -t .py,.txt). Include all if omitted")
	cmd.Flags().StringSlice("ignore", nil, "Directory names to ignore, replacing the defaults (default: node_modules,__pycache__,.git,.vscode,.idea)")
	cmd.Flags().Bool("no-recursive", false, "Disable recursive traversal (alias: -nr)")
	cmd.Flags().IntP("max-size", "m", 10, "Max file size (MB) to process")
	cmd.Flags().String("config", "", "Path to config file (default: "+config.DefaultConfigFile+")")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error (default: info)")
	cmd.Flags().String("log-dir", "", "Also write a per-run log file to this directory")

	return cmd
}
