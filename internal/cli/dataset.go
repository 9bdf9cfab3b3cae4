package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tessro/dialogcoach/internal/coordinator"
	"github.com/tessro/dialogcoach/internal/pipeline"
	"github.com/tessro/dialogcoach/internal/roster"
)

// rosterFile returns the roster file to load: --roster, then the config.
// Empty means the built-in data.
func rosterFile() string {
	if rosterPath != "" {
		return rosterPath
	}
	return cfg.GetRoster()
}

// loadDataset loads the configured roster file, or the built-in dataset.
func loadDataset() (*roster.Dataset, error) {
	path := rosterFile()
	if path == "" {
		slog.Debug("cli: using built-in roster")
		return roster.Builtin(), nil
	}
	d, err := roster.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	slog.Info("cli: roster loaded", "path", path, "coaches", len(d.Coaches))
	return d, nil
}

// augmenter returns the synthetic augmenter from the config, or NoAugment
// when [demo].coach is empty. A zero seed everywhere falls back to the clock.
func augmenter() pipeline.Augmenter {
	coachID := cfg.GetDemoCoach()
	if coachID == "" {
		return pipeline.NoAugment{}
	}
	s := seed
	if s == 0 {
		s = cfg.GetDemoSeed()
	}
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return pipeline.NewSynthetic(coachID, cfg.GetDemoCount(), s)
}

// resolveCoach picks the coach to show: the flag value, then the config,
// then the dataset default. An explicit id that names no coach is an error.
func resolveCoach(d *roster.Dataset, flag string) (roster.Coach, error) {
	id := flag
	if id == "" {
		id = cfg.GetDefaultCoach()
	}
	if id == "" {
		return d.DefaultCoach(), nil
	}
	c, ok := d.Coach(id)
	if !ok {
		return roster.Coach{}, fmt.Errorf("unknown coach: %s", id)
	}
	return c, nil
}

// deriveView loads the dataset and derives the view for one coach.
func deriveView(coachFlag, query string) (*roster.Dataset, roster.Coach, pipeline.View, error) {
	d, err := loadDataset()
	if err != nil {
		return nil, roster.Coach{}, pipeline.View{}, err
	}
	coach, err := resolveCoach(d, coachFlag)
	if err != nil {
		return nil, roster.Coach{}, pipeline.View{}, err
	}
	st := coordinator.Initial(d, coach.ID)
	view := pipeline.Derive(pipeline.Input{
		Employees: st.Employees,
		CoachID:   st.Coach.ID,
		Query:     query,
	}, augmenter())
	return d, st.Coach, view, nil
}
