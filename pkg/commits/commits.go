// Package commits builds Conventional Commit messages for new posts.
package commits

import (
	"fmt"
	"strings"

	"github.com/aretw0/quill/pkg/core"
)

// CommitType constants for semantic commits
const (
	CommitTypeFeat  = "feat"
	CommitTypeFix   = "fix"
	CommitTypeDocs  = "docs"
	CommitTypeChore = "chore"
)

// Format builds a Conventional Commit header:
//
//	<type>(<scope>): <subject>
func Format(ctype, scope, subject string) string {
	var sb strings.Builder

	if ctype == "" {
		ctype = CommitTypeChore
	}
	sb.WriteString(ctype)

	if scope != "" {
		sb.WriteString("(")
		sb.WriteString(scope)
		sb.WriteString(")")
	}

	sb.WriteString(": ")
	sb.WriteString(strings.TrimSpace(subject))

	return sb.String()
}

// PostMessage returns the message for committing post n,
// e.g. "feat(000007): write new post #7".
func PostMessage(n int) string {
	return Format(CommitTypeFeat, core.FormatNumber(n), fmt.Sprintf("write new post #%d", n))
}

// PostMessageFunc returns a core.MessageFunc using ctype instead of feat.
func PostMessageFunc(ctype string) core.MessageFunc {
	if ctype == "" || ctype == CommitTypeFeat {
		return PostMessage
	}
	return func(n int) string {
		return Format(ctype, core.FormatNumber(n), fmt.Sprintf("write new post #%d", n))
	}
}
