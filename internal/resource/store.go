package resource

import (
	"context"
	"time"

	"gym-service/internal/storedproc"
	"gym-service/prometheus"
)

// Store drives one resource's CRUD through the procedure gateway. It is
// stateless: the database owns every row, and nothing read here is assumed
// still valid by the time a later write runs.
type Store struct {
	desc Descriptor
	gw   *storedproc.Gateway
}

// NewStore binds a descriptor to the gateway
func NewStore(gw *storedproc.Gateway, desc Descriptor) *Store {
	return &Store{desc: desc, gw: gw}
}

// Descriptor returns the bound resource descriptor
func (s *Store) Descriptor() Descriptor {
	return s.desc
}

// List returns every row of the resource as JSON-safe records
func (s *Store) List(ctx context.Context) ([]storedproc.Record, error) {
	defer prometheus.TrackDBOperation(s.desc.ProcList)(time.Now())

	result, err := s.gw.Query(ctx, s.desc.ProcList)
	if err != nil {
		return nil, s.classify(s.desc.ProcList, err)
	}
	return storedproc.Records(result, s.desc.DecimalScales), nil
}

// Get returns the row with the given id, or a not-found error when the
// procedure returns zero rows. Zero rows is a distinct outcome from a
// database failure.
func (s *Store) Get(ctx context.Context, id int64) (storedproc.Record, error) {
	defer prometheus.TrackDBOperation(s.desc.ProcGet)(time.Now())

	result, err := s.gw.Query(ctx, s.desc.ProcGet, id)
	if err != nil {
		return nil, s.classify(s.desc.ProcGet, err)
	}

	records := storedproc.Records(result, s.desc.DecimalScales)
	if len(records) == 0 {
		prometheus.RecordDBError(s.desc.ProcGet, storedproc.KindNotFound.String())
		return nil, storedproc.NotFound(s.desc.Name, id)
	}
	return records[0], nil
}

// Create runs the insert procedure and re-reads the new row so the caller
// gets back exactly what the database persisted.
func (s *Store) Create(ctx context.Context, params ...any) (storedproc.Record, error) {
	start := time.Now()
	id, err := s.gw.ExecReturningID(ctx, s.desc.ProcAdd, params...)
	prometheus.TrackDBOperation(s.desc.ProcAdd)(start)
	if err != nil {
		return nil, s.classify(s.desc.ProcAdd, err)
	}
	// The re-read times itself under its own procedure label.
	return s.Get(ctx, id)
}

// Update runs the update procedure (id first, then the resource fields) and
// re-reads the row. Existence is checked by the procedure, not here.
func (s *Store) Update(ctx context.Context, id int64, params ...any) (storedproc.Record, error) {
	args := append([]any{id}, params...)

	start := time.Now()
	err := s.gw.Exec(ctx, s.desc.ProcUpdate, args...)
	prometheus.TrackDBOperation(s.desc.ProcUpdate)(start)
	if err != nil {
		return nil, s.classify(s.desc.ProcUpdate, err)
	}
	return s.Get(ctx, id)
}

// Delete runs the delete procedure. Deleting a missing id surfaces whatever
// the procedure signals, classified, with no row modified.
func (s *Store) Delete(ctx context.Context, id int64) error {
	defer prometheus.TrackDBOperation(s.desc.ProcDelete)(time.Now())

	if err := s.gw.Exec(ctx, s.desc.ProcDelete, id); err != nil {
		return s.classify(s.desc.ProcDelete, err)
	}
	return nil
}

func (s *Store) classify(procedure string, err error) *storedproc.Error {
	classified := storedproc.Classify(err, s.desc.SignalPhrases)
	prometheus.RecordDBError(procedure, classified.Kind.String())
	return classified
}
