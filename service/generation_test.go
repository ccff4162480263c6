package service

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T, opts *Options) *GenerationService {
	t.Helper()
	svc, err := NewGenerationService(log.WithField("component", "TEST"), opts)
	assert.NoError(t, err)
	return svc.(*GenerationService)
}

func testConfig(seed int64) mazegen.Config {
	return mazegen.Config{
		Width:     4,
		Height:    4,
		Algorithm: mazegen.Backtracking,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

func TestGenerationService(t *testing.T) {
	svc := newTestService(t, nil)

	t.Run("generates and retrieves a run", func(t *testing.T) {
		run, err := svc.Generate(testConfig(1), true)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, run.ID)
		assert.NotEmpty(t, run.Steps)
		assert.Equal(t, mazegen.CellPosition{Row: 0, Col: 0}, run.Start)
		assert.Equal(t, mazegen.CellPosition{Row: 3, Col: 3}, run.Exit)

		fetched, err := svc.RunByID(run.ID)
		assert.NoError(t, err)
		assert.Equal(t, run, fetched)

		steps, err := svc.StepsByID(run.ID)
		assert.NoError(t, err)
		assert.Equal(t, run.Steps, steps)
	})

	t.Run("unrecorded runs have an empty step log", func(t *testing.T) {
		run, err := svc.Generate(testConfig(2), false)
		assert.NoError(t, err)

		steps, err := svc.StepsByID(run.ID)
		assert.NoError(t, err)
		assert.Empty(t, steps)
	})

	t.Run("rejects invalid configurations", func(t *testing.T) {
		cfg := testConfig(3)
		cfg.Width = 0
		_, err := svc.Generate(cfg, false)
		assert.ErrorIs(t, err, mazegen.ErrInvalidDimensions)
	})

	t.Run("returns ErrRunNotFound for unknown IDs", func(t *testing.T) {
		_, err := svc.RunByID(uuid.New())
		assert.ErrorIs(t, err, ErrRunNotFound)

		_, err = svc.StepsByID(uuid.New())
		assert.ErrorIs(t, err, ErrRunNotFound)
	})
}

func TestGenerationServiceEviction(t *testing.T) {
	svc := newTestService(t, &Options{MaxRetainedRuns: 1})

	first, err := svc.Generate(testConfig(4), false)
	assert.NoError(t, err)
	second, err := svc.Generate(testConfig(5), false)
	assert.NoError(t, err)

	_, err = svc.RunByID(first.ID)
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = svc.RunByID(second.ID)
	assert.NoError(t, err)
}
