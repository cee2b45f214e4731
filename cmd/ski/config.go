package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the default game configuration.

Pipe it into a file, tweak the numbers, and load it with --config, or use
--write to install it at ~/.ski/configs/ski.yaml where it is picked up
automatically.

Examples:
  ski config > my-ski.yaml
  ski config --write
  ski play --config my-ski.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the default config to ~/.ski/configs/ski.yaml")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML()

	if !flagConfigWrite {
		fmt.Print(string(data))
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve home directory: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(home, ".ski", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %s: %v\n", dir, err)
		os.Exit(1)
	}

	path := filepath.Join(dir, "ski.yaml")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, refusing to overwrite\n", path)
		os.Exit(1)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config to %s\n", path)
}
