package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfscan/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a commented default config file.

Writes to the path given by --config, or the standard location
($XDG_CONFIG_HOME/shelfscan/config.toml) when the flag is unset.
Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Printf("Wrote config to %s\n", path)
	return nil
}
