package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// SnapshotRepository reads and writes the local snapshot cache.
type SnapshotRepository struct {
	db *Database
}

func NewSnapshotRepository(database *Database) *SnapshotRepository {
	return &SnapshotRepository{db: database}
}

func (r *SnapshotRepository) UpsertSession(ctx context.Context, snapshot *SessionSnapshot) error {
	snapshot.SyncedAt = time.Now()
	_, err := r.db.Bun().NewInsert().
		Model(snapshot).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("description = EXCLUDED.description").
		Set("status = EXCLUDED.status").
		Set("initial_prompt = EXCLUDED.initial_prompt").
		Set("updated_at = EXCLUDED.updated_at").
		Set("synced_at = EXCLUDED.synced_at").
		Exec(ctx)
	return err
}

func (r *SnapshotRepository) ListSessions(ctx context.Context) ([]SessionSnapshot, error) {
	var sessions []SessionSnapshot
	err := r.db.Bun().NewSelect().
		Model(&sessions).
		OrderExpr("updated_at DESC").
		Scan(ctx)
	return sessions, err
}

func (r *SnapshotRepository) GetSession(ctx context.Context, id string) (*SessionSnapshot, error) {
	snapshot := new(SessionSnapshot)
	err := r.db.Bun().NewSelect().Model(snapshot).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return snapshot, nil
}

func (r *SnapshotRepository) HasVersion(ctx context.Context, labID string, version int) (bool, error) {
	count, err := r.db.Bun().NewSelect().
		Model((*PromptVersionRecord)(nil)).
		Where("lab_id = ? AND version = ?", labID, version).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SnapshotRepository) StoreVersion(ctx context.Context, record *PromptVersionRecord) error {
	record.SyncedAt = time.Now()
	_, err := r.db.Bun().NewInsert().
		Model(record).
		On("CONFLICT (lab_id, version) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *SnapshotRepository) ListVersions(ctx context.Context, labID string) ([]PromptVersionRecord, error) {
	var versions []PromptVersionRecord
	err := r.db.Bun().NewSelect().
		Model(&versions).
		Where("lab_id = ?", labID).
		OrderExpr("version ASC").
		Scan(ctx)
	return versions, err
}

func (r *SnapshotRepository) GetVersion(ctx context.Context, labID string, version int) (*PromptVersionRecord, error) {
	record := new(PromptVersionRecord)
	err := r.db.Bun().NewSelect().
		Model(record).
		Where("lab_id = ? AND version = ?", labID, version).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (r *SnapshotRepository) LatestVersion(ctx context.Context, labID string) (*PromptVersionRecord, error) {
	record := new(PromptVersionRecord)
	err := r.db.Bun().NewSelect().
		Model(record).
		Where("lab_id = ?", labID).
		OrderExpr("version DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// PruneSessions removes cached sessions that are no longer present upstream.
// An empty keep list is a no-op rather than a full wipe.
func (r *SnapshotRepository) PruneSessions(ctx context.Context, keepIDs []string) (int, error) {
	if len(keepIDs) == 0 {
		return 0, nil
	}
	res, err := r.db.Bun().NewDelete().
		Model((*SessionSnapshot)(nil)).
		Where("id NOT IN (?)", bun.In(keepIDs)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
