package core

import (
	"context"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StoreType   string `json:"store_type"`
	Annotations int    `json:"annotations"`
	Watchable   bool   `json:"watchable"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storeType := "unknown"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	count := 0
	if annotations, err := s.store.List(context.Background()); err == nil {
		count = len(annotations)
	}

	_, watchable := s.store.(Watchable)

	return ServiceState{
		StoreType:   storeType,
		Annotations: count,
		Watchable:   watchable,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
