package platform

import (
	"errors"

	"github.com/aretw0/quill/pkg/adapters/editor"
	"github.com/aretw0/quill/pkg/adapters/fs"
	"github.com/aretw0/quill/pkg/commits"
	"github.com/aretw0/quill/pkg/core"
	"github.com/aretw0/quill/pkg/git"
)

// New wires the filesystem repository, the external editor and git into a service.
//
//	cfg, _ := platform.LoadConfig(root, nil)
//	svc, err := platform.New(cfg, platform.WithLogger(logger))
func New(cfg Config, opts ...Option) (*core.Service, error) {
	if cfg.Root == "" {
		return nil, errors.New("blog root is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:   cfg.ContentDir(),
			Logger: o.logger,
		})
	}

	ed := o.editor
	if ed == nil {
		ed = editor.New(editor.Config{
			Command: editor.Resolve(cfg.Editor),
			Logger:  o.logger,
		})
	}

	var versioner core.Versioner
	if cfg.Git.Enabled {
		versioner = o.versioner
		if versioner == nil {
			versioner = git.NewVersioner(git.NewClient(cfg.Root, o.logger))
		}
	}

	serviceOpts := []core.ServiceOption{
		core.WithServiceLogger(o.logger),
		core.WithMessage(commits.PostMessageFunc(cfg.CommitType)),
	}
	if o.now != nil {
		serviceOpts = append(serviceOpts, core.WithClock(o.now))
	}

	return core.NewService(repo, ed, versioner, serviceOpts...), nil
}
