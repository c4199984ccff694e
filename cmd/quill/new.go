package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/adapters/editor"
	"github.com/aretw0/quill/pkg/core"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a new post",
	Long: `Open the editor on a scratch file and save the result as the next numbered post.
An empty file aborts without creating anything. If committing fails the post is
kept on disk and quill still exits successfully.`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) {
	svc := newService(loadConfig(cmd))
	os.Exit(createPost(cmd.Context(), os.Stdout, svc))
}

// createPost runs the new-post workflow, reporting progress to w, and returns the exit code.
func createPost(ctx context.Context, w io.Writer, svc *core.Service) int {
	n, err := svc.NextNumber(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error finding next post number: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "Creating post #%d\n", n)

	res, err := svc.Publish(ctx, n)
	switch {
	case errors.Is(err, core.ErrCancelled):
		fmt.Fprintln(w, "\nOperation cancelled.")
		return 1
	case errors.Is(err, core.ErrEmptyBody):
		fmt.Fprintln(w, "Aborting because no content was written")
		return 1
	case errors.Is(err, core.ErrEditorFailed):
		fmt.Fprintf(w, "Error launching editor: %v\n", err)
		if editor.IsNotFound(err) {
			fmt.Fprintln(w, "Tip: set 'editor' in quill.yaml, $VISUAL or $EDITOR, or pass --editor.")
		}
		return 1
	case err != nil:
		fmt.Fprintf(w, "Error creating post: %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "Created: %s\n", res.Path)

	switch {
	case res.Committed:
		fmt.Fprintf(w, "Committed to git: %s\n", res.Message)
	case res.CommitErr != nil:
		fmt.Fprintf(w, "Git operation failed: %v\n", res.CommitErr)
		fmt.Fprintln(w, "The file was created but not committed to git.")
	}
	return 0
}
