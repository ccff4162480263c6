// Package service wires the maze generation engine to the API surface,
// assigning run identifiers and retaining finished runs for step retrieval.
package service

import (
	"errors"
	"sync"
	"time"

	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultMaxRetainedRuns = 128

var (
	// ErrRunNotFound indicates an unknown or already evicted run ID.
	ErrRunNotFound = errors.New("generation run not found")
)

// Options configures a GenerationService.
type Options struct {
	MaxRetainedRuns int // Oldest runs are evicted beyond this count.
}

// GenerationService implements i.MazeService with an in-memory run registry.
// Runs are kept only for the lifetime of the process; durable persistence is
// deliberately out of scope.
type GenerationService struct {
	mu     sync.RWMutex
	runs   map[uuid.UUID]*i.MazeRun
	order  []uuid.UUID
	logger *log.Entry
	opts   *Options
}

// NewGenerationService creates a GenerationService.
func NewGenerationService(logger *log.Entry, opts *Options) (i.MazeService, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxRetainedRuns <= 0 {
		opts.MaxRetainedRuns = defaultMaxRetainedRuns
	}

	return &GenerationService{
		runs:   make(map[uuid.UUID]*i.MazeRun),
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate runs one full generation with the given configuration, stores the
// finished run under a fresh ID and returns it.
func (s *GenerationService) Generate(cfg mazegen.Config, recordSteps bool) (*i.MazeRun, error) {
	engine, err := mazegen.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	grid, err := engine.Generate(recordSteps)
	if err != nil {
		return nil, err
	}

	run := &i.MazeRun{
		ID:        uuid.New(),
		Algorithm: cfg.Algorithm,
		Grid:      grid,
		Steps:     engine.GenerationSteps(),
		Start:     engine.StartPosition(),
		Exit:      engine.ExitPosition(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	for len(s.order) > s.opts.MaxRetainedRuns {
		evicted := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, evicted)
	}
	s.mu.Unlock()

	s.logger.WithFields(log.Fields{
		"run_id":    run.ID,
		"algorithm": cfg.Algorithm,
		"width":     cfg.Width,
		"height":    cfg.Height,
		"steps":     len(run.Steps),
	}).Info("maze generated")

	return run, nil
}

// RunByID returns a previously generated run.
func (s *GenerationService) RunByID(id uuid.UUID) (*i.MazeRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// StepsByID returns the ordered step log of a previously generated run. The
// log is empty when the run was generated without recording.
func (s *GenerationService) StepsByID(id uuid.UUID) ([]mazegen.Step, error) {
	run, err := s.RunByID(id)
	if err != nil {
		return nil, err
	}
	return run.Steps, nil
}
