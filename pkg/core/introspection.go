package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RepositoryType string `json:"repository_type"`
	ContentPath    string `json:"content_path"`
	Versioning     bool   `json:"versioning"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	path := ""
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		path = s.repo.Path()
	}

	return ServiceState{
		RepositoryType: repoType,
		ContentPath:    path,
		Versioning:     s.versioner != nil,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

// Repository returns the underlying repository.
func (s *Service) Repository() Repository {
	return s.repo
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
