package viewer

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rooflens/roofmesh/pkg/mesh"
	"github.com/rooflens/roofmesh/pkg/watcher"
)

// ErrNoModel is returned by operations that require a loaded mesh
var ErrNoModel = errors.New("no model loaded")

// watchDebounce collapses the write bursts model exporters produce
const watchDebounce = 500 * time.Millisecond

// Load parses the model file in the background and attaches the result.
// Loading is a cancellable one-shot: requesting another load before
// this one resolves supersedes it, and the stale result is discarded
// instead of being attached. The returned ticket identifies the request.
func (s *Session) Load(path string) uint64 {
	ticket := s.issueTicket()

	go func() {
		model, err := mesh.Parse(path)
		if err != nil {
			s.log.Error("model load failed", zap.String("path", path), zap.Error(err))
			return
		}
		s.applyLoaded(model, ticket)
	}()

	return ticket
}

// issueTicket takes s.mu so issuance serializes with applyLoaded: a
// ticket issued while an older result is attaching is guaranteed to
// supersede it.
func (s *Session) issueTicket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadTicket++
	return s.loadTicket
}

// applyLoaded attaches a loaded model unless a newer load has been
// requested since. A stale arrival is an expected race, logged for
// diagnostics only.
func (s *Session) applyLoaded(model *mesh.Model, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadTicket != ticket {
		s.log.Debug("discarding superseded model load",
			zap.Uint64("ticket", ticket),
			zap.String("name", model.Name))
		return false
	}

	s.attachLocked(model)
	return true
}

// WatchFile reloads the model whenever the file changes on disk. The
// caller owns the returned watcher and closes it on shutdown.
func (s *Session) WatchFile(path string) (*watcher.FileWatcher, error) {
	fw, err := watcher.New(watchDebounce, s.log)
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{path}, func(changed string) {
		s.log.Info("model file changed, reloading", zap.String("path", changed))
		s.Load(changed)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}
