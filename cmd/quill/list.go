package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
)

var listJSON bool

type postSummary struct {
	Number int    `json:"number"`
	File   string `json:"file"`
	Title  string `json:"title"`
	Date   string `json:"date,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing posts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService(loadConfig(cmd))

		posts, err := svc.ListPosts(cmd.Context())
		if err != nil {
			fatal("Failed to list posts", err)
		}

		if err := writePosts(os.Stdout, posts, listJSON); err != nil {
			fatal("Failed to print posts", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

func writePosts(w io.Writer, posts []core.Post, asJSON bool) error {
	summaries := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		s := postSummary{Number: p.Number, File: p.Filename(), Title: p.Title}
		if !p.Date.IsZero() {
			s.Date = p.Date.Format(core.DateLayout)
		}
		summaries = append(summaries, s)
	}

	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summaries)
	}

	for _, s := range summaries {
		date := s.Date
		if date == "" {
			date = "-"
		}
		if _, err := fmt.Fprintf(w, "%s  %-20s  %s\n", core.FormatNumber(s.Number), date, s.Title); err != nil {
			return err
		}
	}
	return nil
}
