// Package memory archives operation transcripts for the lifetime of the
// process. Persistence across sessions is deliberately out of scope.
package memory

import (
	"context"

	"github.com/cafeq/cafeq/model/transcript"
	"github.com/cafeq/cafeq/service/dao"
	"github.com/cafeq/cafeq/service/dao/store"
)

// Service implements dao.Service for transcripts, keyed by run id and listed
// in the order runs were recorded.
type Service struct {
	*store.MemoryStore[string, transcript.Transcript]
}

var _ dao.Service[string, transcript.Transcript] = (*Service)(nil)

func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, transcript.Transcript](
			func(t *transcript.Transcript) string { return t.ID },
		),
	}
}

// Save rejects transcripts without an id; the rest is delegated to the
// embedded store.
func (s *Service) Save(ctx context.Context, t *transcript.Transcript) error {
	if t == nil {
		return dao.ErrNilEntity
	}
	if t.ID == "" {
		return dao.ErrInvalidID
	}
	return s.MemoryStore.Save(ctx, t)
}

// List returns archived transcripts, optionally filtered by an "op"
// parameter naming the operation that produced them.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*transcript.Transcript, error) {
	all, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	op := opFilter(parameters)
	if op == "" {
		return all, nil
	}
	out := make([]*transcript.Transcript, 0, len(all))
	for _, t := range all {
		if t.Op == op {
			out = append(out, t)
		}
	}
	return out, nil
}

func opFilter(parameters []*dao.Parameter) string {
	for _, p := range parameters {
		if p == nil || p.Name != "op" {
			continue
		}
		if value, ok := p.Value.(string); ok {
			return value
		}
	}
	return ""
}
