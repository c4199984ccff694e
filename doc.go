// Package quill is the Composition Root for the quill blogging tool.
//
// quill writes numbered posts for a static-site blog. A new post goes through
// one linear workflow:
//
//  1. scan the content directory for NNNNNN.md files and take max + 1,
//  2. open an external editor on a scratch file and wait for it to exit,
//  3. abort if nothing was written,
//  4. write content/NNNNNN.md with a slug/title/date header followed by the body,
//  5. git add and commit it as "feat(NNNNNN): write new post #N".
//
// A failed commit leaves the post on disk and is reported, not returned as an error.
//
// Usage:
//
//	cfg, err := quill.LoadConfig(root, nil)
//	svc, err := quill.New(cfg, quill.WithLogger(logger))
//
//	res, err := svc.NewPost(ctx)
//	if res.CommitErr != nil {
//		// post written, not committed
//	}
package quill
