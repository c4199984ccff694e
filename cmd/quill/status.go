package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
	"github.com/aretw0/quill/pkg/git"
)

var statusJSON bool

type statusReport struct {
	Root       string         `json:"root"`
	ConfigFile string         `json:"config_file,omitempty"`
	GitRepo    bool           `json:"git_repo"`
	NextNumber int            `json:"next_number,omitempty"`
	Error      string         `json:"error,omitempty"`
	Components map[string]any `json:"components"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the blog root, content directory and next post number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		svc := newService(cfg)

		report := statusReport{
			Root:       cfg.Root,
			ConfigFile: cfg.File,
			GitRepo:    git.NewClient(cfg.Root, nil).IsRepo(cmd.Context()),
			Components: make(map[string]any),
		}

		// Computing the next number refreshes the repository's scan state.
		if n, err := svc.NextNumber(cmd.Context()); err != nil {
			report.Error = err.Error()
		} else {
			report.NextNumber = n
		}

		collect(report.Components, svc)
		collect(report.Components, svc.Repository())

		if err := writeStatus(os.Stdout, report, statusJSON); err != nil {
			fatal("Failed to print status", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}

// collect records the state of v under its component type, if it exposes one.
func collect(into map[string]any, v any) {
	intro, ok := v.(introspection.Introspectable)
	if !ok {
		return
	}
	name := "component"
	if comp, ok := v.(introspection.Component); ok {
		name = comp.ComponentType()
	}
	into[name] = intro.State()
}

func writeStatus(w io.Writer, r statusReport, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	}

	fmt.Fprintf(w, "Root:        %s\n", r.Root)
	if r.ConfigFile != "" {
		fmt.Fprintf(w, "Config:      %s\n", r.ConfigFile)
	}
	fmt.Fprintf(w, "Git repo:    %t\n", r.GitRepo)
	if s, ok := r.Components["service"].(core.ServiceState); ok {
		fmt.Fprintf(w, "Content:     %s\n", s.ContentPath)
		fmt.Fprintf(w, "Committing:  %t\n", s.Versioning)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "Error:       %s\n", r.Error)
		return nil
	}
	_, err := fmt.Fprintf(w, "Next post:   #%d (%s%s)\n", r.NextNumber, core.FormatNumber(r.NextNumber), core.Extension)
	return err
}

