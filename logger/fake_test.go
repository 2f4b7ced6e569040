package logger

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/core"
)

type fakeRecord struct {
	logger string
	level  core.Level
	msg    any
	err    error
}

// fakeBackend counts probes and adapter constructions and records every
// emitted message.
type fakeBackend struct {
	name       string
	probeErr   error
	adapterErr error
	logErr     error
	threshold  core.Level

	probes   atomic.Int32
	adapters atomic.Int32
	syncs    atomic.Int32

	mu      sync.Mutex
	records []fakeRecord
}

func newFake(name string) *fakeBackend {
	return &fakeBackend{name: name, threshold: core.TraceLevel}
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Probe() error {
	b.probes.Add(1)
	return b.probeErr
}

func (b *fakeBackend) Adapter(name string) (backend.Adapter, error) {
	b.adapters.Add(1)
	if b.adapterErr != nil {
		return nil, b.adapterErr
	}
	return &fakeAdapter{b: b, name: name}, nil
}

func (b *fakeBackend) Sync() error {
	b.syncs.Add(1)
	return nil
}

func (b *fakeBackend) all() []fakeRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]fakeRecord(nil), b.records...)
}

type fakeAdapter struct {
	b    *fakeBackend
	name string
}

func (a *fakeAdapter) Enabled(level core.Level) bool {
	if !level.Valid() {
		core.UnknownLevel("fake", level)
	}
	return level >= a.b.threshold
}

func (a *fakeAdapter) Log(level core.Level, msg any, err error) error {
	if !a.Enabled(level) {
		return nil
	}
	if a.b.logErr != nil {
		return a.b.logErr
	}
	a.b.mu.Lock()
	a.b.records = append(a.b.records, fakeRecord{logger: a.name, level: level, msg: msg, err: err})
	a.b.mu.Unlock()
	return nil
}
