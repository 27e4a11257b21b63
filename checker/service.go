package checker

import (
	"context"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/viant/afs"
)

// DefaultLocation is the document checked when no location is supplied on
// the command line.
const DefaultLocation = ".gemini/commands/refactor/surgical.toml"

// Service validates TOML documents.
type Service struct {
	fs afs.Service
}

// Option customises a Service.
type Option func(*Service)

// WithFS overrides the file service used to read documents.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a validation service.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	return s
}

// Check reads the document at location and attempts to decode it as TOML.
// It returns nil when the document decodes cleanly and *Error otherwise.
// The decoded value is discarded - only the outcome matters here.  An empty
// document is valid TOML (no keys).
func (s *Service) Check(ctx context.Context, location string) error {
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	var document map[string]interface{}
	if err := toml.Unmarshal(data, &document); err != nil {
		return &Error{Message: err.Error()}
	}
	return nil
}
