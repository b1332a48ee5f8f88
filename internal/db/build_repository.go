package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/teyvatcalc/internal/model"
)

// StoredBuild is a build together with its owner and last update time.
type StoredBuild struct {
	UID       string
	Build     model.CharacterBuild
	UpdatedAt time.Time
}

// BuildRepository stores character builds per player UID as JSONB.
type BuildRepository struct {
	db *pgxpool.Pool
}

// NewBuildRepository creates a new BuildRepository.
func NewBuildRepository(db *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{db: db}
}

// SaveBuild inserts or replaces the build named build.Name for uid.
func (r *BuildRepository) SaveBuild(ctx context.Context, uid string, build model.CharacterBuild) error {
	if uid == "" || build.Name == "" {
		return fmt.Errorf("saving build: uid and name are required")
	}
	raw, err := json.Marshal(build)
	if err != nil {
		return fmt.Errorf("encoding build %q: %w", build.Name, err)
	}

	query := `
		INSERT INTO character_builds (uid, name, build, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (uid, name) DO UPDATE SET build = EXCLUDED.build, updated_at = now()
	`
	if _, err := r.db.Exec(ctx, query, uid, build.Name, raw); err != nil {
		return fmt.Errorf("saving build %q for %s: %w", build.Name, uid, err)
	}

	slog.Debug("saved build", "uid", uid, "name", build.Name)
	return nil
}

// GetBuild loads the build named name for uid.
// Returns nil, nil if the build does not exist.
func (r *BuildRepository) GetBuild(ctx context.Context, uid, name string) (*model.CharacterBuild, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT build FROM character_builds WHERE uid = $1 AND name = $2`,
		uid, name,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying build %q for %s: %w", name, uid, err)
	}

	var b model.CharacterBuild
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decoding build %q for %s: %w", name, uid, err)
	}
	return &b, nil
}

// ListBuilds returns every build of uid, most recently updated first.
func (r *BuildRepository) ListBuilds(ctx context.Context, uid string) ([]StoredBuild, error) {
	rows, err := r.db.Query(ctx,
		`SELECT build, updated_at FROM character_builds WHERE uid = $1 ORDER BY updated_at DESC, name`,
		uid,
	)
	if err != nil {
		return nil, fmt.Errorf("querying builds for %s: %w", uid, err)
	}
	defer rows.Close()

	var out []StoredBuild
	for rows.Next() {
		var raw []byte
		sb := StoredBuild{UID: uid}
		if err := rows.Scan(&raw, &sb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning build for %s: %w", uid, err)
		}
		if err := json.Unmarshal(raw, &sb.Build); err != nil {
			return nil, fmt.Errorf("decoding build for %s: %w", uid, err)
		}
		out = append(out, sb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating builds for %s: %w", uid, err)
	}
	return out, nil
}

// DeleteBuild removes the build named name for uid.
// Returns false if there was nothing to delete.
func (r *BuildRepository) DeleteBuild(ctx context.Context, uid, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM character_builds WHERE uid = $1 AND name = $2`, uid, name)
	if err != nil {
		return false, fmt.Errorf("deleting build %q for %s: %w", name, uid, err)
	}
	return tag.RowsAffected() > 0, nil
}
