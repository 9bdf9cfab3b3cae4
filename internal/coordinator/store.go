package coordinator

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tessro/dialogcoach/internal/event"
	"github.com/tessro/dialogcoach/internal/pipeline"
	"github.com/tessro/dialogcoach/internal/roster"
)

// Snapshot pairs a state with the view derived from it.
type Snapshot struct {
	Version uint64
	State   State
	View    pipeline.View
}

// Store holds the current snapshot and notifies subscribers on every change.
//
// Dispatch and ReplaceDataset return the snapshot they publish; the TUI binds
// to that return value from its Update loop. Subscribe serves observers
// outside that loop. Both methods may be called from any goroutine:
// publishMu serializes them, so subscribers see snapshots in Version order.
// Subscribers must not call Dispatch or ReplaceDataset themselves.
type Store struct {
	publishMu sync.Mutex

	// +checklocks:mu
	dataset *roster.Dataset
	// +checklocks:mu
	snap Snapshot
	mu   sync.Mutex

	aug    pipeline.Augmenter
	events event.Emitter[Snapshot]
}

// NewStore creates a store on coachID's roster (the default coach when empty
// or unknown). A nil augmenter disables augmentation.
func NewStore(d *roster.Dataset, aug pipeline.Augmenter, coachID string) *Store {
	if aug == nil {
		aug = pipeline.NoAugment{}
	}
	s := &Store{dataset: d, aug: aug}
	s.snap = s.derive(1, Initial(d, coachID))
	return s
}

func (s *Store) derive(version uint64, st State) Snapshot {
	return Snapshot{
		Version: version,
		State:   st,
		View: pipeline.Derive(pipeline.Input{
			Employees: st.Employees,
			CoachID:   st.Coach.ID,
			Query:     st.Query,
		}, s.aug),
	}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Dataset returns the reference data the store works on.
func (s *Store) Dataset() *roster.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// Subscribe registers fn for every new snapshot and returns an unsubscribe func.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	return s.events.Subscribe(fn)
}

// Dispatch applies a and publishes the resulting snapshot.
func (s *Store) Dispatch(a Action) Snapshot {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	prev := s.snap.State
	next := Reduce(s.dataset, prev, a)
	s.snap = s.derive(s.snap.Version+1, next)
	snap := s.snap
	s.mu.Unlock()

	slog.Debug("coordinator: dispatch",
		"action", fmt.Sprintf("%T", a),
		"coach", next.Coach.ID,
		"modal", next.Modal.String(),
		"visible", len(snap.View.Visible),
		"without_cycle", snap.View.WithoutCycleCount,
	)
	if prev.Coach.ID != next.Coach.ID {
		slog.Info("coordinator: coach switched", "from", prev.Coach.ID, "to", next.Coach.ID)
	}

	s.events.Emit(snap)
	return snap
}

// ReplaceDataset swaps in freshly loaded reference data. The selected coach is
// kept when it still exists and its roster is reloaded; cycles assigned in
// this session are discarded.
func (s *Store) ReplaceDataset(d *roster.Dataset) Snapshot {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	prev := s.snap.State
	next := Initial(d, prev.Coach.ID)
	next.Query = prev.Query
	if prev.Modal == ModalAssign && !next.CanAssign() {
		next.Modal = ModalNone
	} else {
		next.Modal = prev.Modal
	}
	s.dataset = d
	s.snap = s.derive(s.snap.Version+1, next)
	snap := s.snap
	s.mu.Unlock()

	slog.Info("coordinator: dataset replaced",
		"coaches", len(d.Coaches),
		"coach", next.Coach.ID,
		"employees", len(next.Employees),
	)
	s.events.Emit(snap)
	return snap
}
