package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"ecoquest/internal/events"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/repositories"
	"ecoquest/internal/session"
)

var (
	jakarta = time.FixedZone("WIB", 7*3600)
	// Wednesday 12 March 2025, 10:00 WIB
	fixedNow = time.Date(2025, 3, 12, 10, 0, 0, 0, jakarta)
)

func fixedClock() time.Time { return fixedNow }

var (
	superAdmin = session.Session{ID: "sess-super", AccountID: "super-1", Role: "super_admin"}
	plainAdmin = session.Session{ID: "sess-admin", AccountID: "admin-1", Role: "admin"}
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var errAuditWrite = errors.New("audit write failed")

// failingActivityRepo refuses inserts and passes everything else through.
type failingActivityRepo struct {
	repositories.ActivityRepository
}

func (f failingActivityRepo) WithTx(tx repositories.TxContext) repositories.ActivityRepository {
	return failingActivityRepo{ActivityRepository: f.ActivityRepository.WithTx(tx)}
}

func (f failingActivityRepo) Insert(context.Context, *db_models.ActivityEvent) error {
	return errAuditWrite
}
