package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/quill"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging quill.yaml, QUILL_* environment variables
and command-line flags.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		if err := writeConfig(os.Stdout, cfg); err != nil {
			fatal("Failed to encode configuration", err)
		}
	},
}

func writeConfig(w io.Writer, cfg quill.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	rootCmd.AddCommand(configCmd)
}
