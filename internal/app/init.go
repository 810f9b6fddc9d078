package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arkinmodi/add-license-header/internal/config"
)

// NewInitCmd returns a new cobra command that writes a default config file.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   InitCmdName + " [dirpath]",
		Short: "Write a default add-license-header config file",
		Long:  `Write a commented default configuration file into the given directory (default: the current directory).`,
		Args:  cobra.MaximumNArgs(1),
		Example: `
add-license-header init
add-license-header init ./my-repo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirpath := "."
			if len(args) > 0 {
				dirpath = args[0]
			}

			if err := os.MkdirAll(dirpath, 0o750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}

			configPath := filepath.Join(dirpath, ".add-license-header.yaml")

			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config already exists: %s", configPath)
			}

			if err := os.WriteFile(configPath, []byte(config.DefaultConfigContent), 0o600); err != nil {
				return fmt.Errorf("failed to write configuration file: %w", err)
			}

			cmd.Printf("Successfully created config at: %s\n", configPath)
			cmd.Println("Set licenseFile in the config, or pass --license/--license-file on each run.")

			return nil
		},
	}

	return cmd
}
