package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/logging"
)

type fakeBackend struct {
	sessions []api.Session
	labs     map[string][]api.PromptLab
	versions map[string][]api.PromptVersion
	err      error
}

func (f *fakeBackend) ListSessions(ctx context.Context) ([]api.Session, error) {
	return f.sessions, f.err
}

func (f *fakeBackend) ListLabs(ctx context.Context, sessionID string) ([]api.PromptLab, error) {
	return f.labs[sessionID], nil
}

func (f *fakeBackend) ListPromptVersions(ctx context.Context, labID string) ([]api.PromptVersion, error) {
	return f.versions[labID], nil
}

type fakeStore struct {
	sessions map[string]*db.SessionSnapshot
	versions map[string]map[int]*db.PromptVersionRecord
	pruned   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[string]*db.SessionSnapshot),
		versions: make(map[string]map[int]*db.PromptVersionRecord),
	}
}

func (f *fakeStore) UpsertSession(ctx context.Context, snapshot *db.SessionSnapshot) error {
	f.sessions[snapshot.ID] = snapshot
	return nil
}

func (f *fakeStore) HasVersion(ctx context.Context, labID string, version int) (bool, error) {
	_, ok := f.versions[labID][version]
	return ok, nil
}

func (f *fakeStore) StoreVersion(ctx context.Context, record *db.PromptVersionRecord) error {
	if f.versions[record.LabID] == nil {
		f.versions[record.LabID] = make(map[int]*db.PromptVersionRecord)
	}
	f.versions[record.LabID][record.Version] = record
	return nil
}

func (f *fakeStore) PruneSessions(ctx context.Context, keepIDs []string) (int, error) {
	f.pruned = keepIDs
	return 2, nil
}

func testService(backend Backend, store Store, mode string) *Service {
	cfg := Config{Mode: mode, FetchMax: 100, CallTimeout: time.Second}
	return NewService(cfg, store, backend, logging.New(logr.Discard()))
}

func TestRun_FullSyncsSessionsAndVersions(t *testing.T) {
	backend := &fakeBackend{
		sessions: []api.Session{{ID: "s1", Name: "demo"}},
		labs:     map[string][]api.PromptLab{"s1": {{ID: "lab1", SessionID: "s1"}}},
		versions: map[string][]api.PromptVersion{"lab1": {
			{LabID: "lab1", Version: 1, Content: "first prompt"},
			{LabID: "lab1", Version: 2, Content: "second prompt"},
		}},
	}
	store := newFakeStore()

	if err := testService(backend, store, "FULL").Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected 1 session stored, got %d", len(store.sessions))
	}
	if len(store.versions["lab1"]) != 2 {
		t.Fatalf("expected 2 versions stored, got %d", len(store.versions["lab1"]))
	}
	if store.versions["lab1"][1].TokenCount < 1 {
		t.Fatalf("expected token count to be computed")
	}
}

func TestRun_SkipsCachedVersions(t *testing.T) {
	backend := &fakeBackend{
		sessions: []api.Session{{ID: "s1"}},
		labs:     map[string][]api.PromptLab{"s1": {{ID: "lab1"}}},
		versions: map[string][]api.PromptVersion{"lab1": {{LabID: "lab1", Version: 1, Content: "x"}}},
	}
	store := newFakeStore()
	store.versions["lab1"] = map[int]*db.PromptVersionRecord{
		1: {LabID: "lab1", Version: 1, Content: "cached"},
	}

	if err := testService(backend, store, "FULL").Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.versions["lab1"][1].Content != "cached" {
		t.Fatalf("cached version was overwritten")
	}
}

func TestRun_SessionsMode(t *testing.T) {
	backend := &fakeBackend{sessions: []api.Session{{ID: "s1"}, {ID: "s2"}}}
	store := newFakeStore()

	if err := testService(backend, store, "SESSIONS").Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(store.sessions))
	}
	if len(store.versions) != 0 {
		t.Fatalf("sessions mode must not touch versions")
	}
}

func TestRun_PruneMode(t *testing.T) {
	backend := &fakeBackend{sessions: []api.Session{{ID: "keep-me"}}}
	store := newFakeStore()

	if err := testService(backend, store, "PRUNE").Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.pruned) != 1 || store.pruned[0] != "keep-me" {
		t.Fatalf("unexpected prune ids %v", store.pruned)
	}
}

func TestRun_InvalidMode(t *testing.T) {
	if err := testService(&fakeBackend{}, newFakeStore(), "BOGUS").Run(context.Background()); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestRun_FetchMaxLimitsSessions(t *testing.T) {
	backend := &fakeBackend{sessions: []api.Session{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	store := newFakeStore()
	svc := NewService(Config{Mode: "SESSIONS", FetchMax: 2}, store, backend, logging.New(logr.Discard()))

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.sessions) != 2 {
		t.Fatalf("expected fetch max to cap at 2, got %d", len(store.sessions))
	}
}

func TestRun_BackendErrorPropagates(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend down")}
	if err := testService(backend, newFakeStore(), "FULL").Run(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
