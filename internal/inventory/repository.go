package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/nclink-core/internal/nclink"
)

// timeFormat sorts lexically in chronological order.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Repository defines snapshot persistence.
type Repository interface {
	// SaveSnapshot stores the device's node dictionary as a new snapshot.
	SaveSnapshot(ctx context.Context, dev *nclink.Device) (Snapshot, error)

	// LatestSnapshot returns the most recent snapshot of a device.
	// Returns ErrSnapshotNotFound if none exists.
	LatestSnapshot(ctx context.Context, deviceID string) (Snapshot, error)

	// ListNodes returns the nodes of a snapshot in registration order.
	// Returns ErrSnapshotNotFound if the snapshot does not exist.
	ListNodes(ctx context.Context, snapshotID string) ([]NodeRecord, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates a repository on an open, migrated connection.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// SaveSnapshot stores the device header and every dictionary node in one
// transaction. The dictionary must already be populated (RegisterNode or
// CollectNodes).
func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, dev *nclink.Device) (Snapshot, error) {
	if dev == nil {
		return Snapshot{}, ErrNilDevice
	}

	nodes := dev.Nodes()
	snap := Snapshot{
		ID:        uuid.NewString(),
		DeviceID:  dev.ID(),
		DevGUID:   dev.DevGUID(),
		Version:   dev.Version(),
		NodeCount: len(nodes),
		Dump:      dev.DumpAllNodes(),
		CreatedAt: r.now().UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, device_id, dev_guid, version, node_count, dump, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.DeviceID, snap.DevGUID, snap.Version, snap.NodeCount, snap.Dump,
		snap.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("inserting snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_nodes (snapshot_id, position, node_id, kind, type, name, path, parent_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("preparing node insert: %w", err)
	}
	defer stmt.Close()

	for i, n := range nodes {
		if _, err := stmt.ExecContext(ctx,
			snap.ID, i, n.ID(), n.Kind().String(), n.Type(), n.Name(), n.Path(), n.Parent().ID,
		); err != nil {
			return Snapshot{}, fmt.Errorf("inserting node %q: %w", n.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("committing snapshot: %w", err)
	}
	return snap, nil
}

// LatestSnapshot returns the most recent snapshot of a device.
func (r *SQLiteRepository) LatestSnapshot(ctx context.Context, deviceID string) (Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, device_id, dev_guid, version, node_count, dump, created_at
		FROM snapshots
		WHERE device_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`, deviceID)

	var snap Snapshot
	var createdAt string
	err := row.Scan(&snap.ID, &snap.DeviceID, &snap.DevGUID, &snap.Version, &snap.NodeCount, &snap.Dump, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, fmt.Errorf("%w: device %q", ErrSnapshotNotFound, deviceID)
		}
		return Snapshot{}, fmt.Errorf("querying latest snapshot: %w", err)
	}
	snap.CreatedAt, err = time.Parse(timeFormat, createdAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return snap, nil
}

// ListNodes returns the nodes of a snapshot in registration order.
func (r *SQLiteRepository) ListNodes(ctx context.Context, snapshotID string) ([]NodeRecord, error) {
	exists, err := r.exists(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrSnapshotNotFound, snapshotID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT snapshot_id, position, node_id, kind, type, name, path, parent_id
		FROM snapshot_nodes
		WHERE snapshot_id = ?
		ORDER BY position`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot nodes: %w", err)
	}
	defer rows.Close()

	var records []NodeRecord
	for rows.Next() {
		var rec NodeRecord
		if err := rows.Scan(&rec.SnapshotID, &rec.Position, &rec.NodeID, &rec.Kind,
			&rec.Type, &rec.Name, &rec.Path, &rec.ParentID); err != nil {
			return nil, fmt.Errorf("scanning snapshot node: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot nodes: %w", err)
	}
	return records, nil
}

func (r *SQLiteRepository) exists(ctx context.Context, snapshotID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM snapshots WHERE id = ?", snapshotID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking snapshot existence: %w", err)
	}
	return true, nil
}
