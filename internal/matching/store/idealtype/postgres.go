package idealtype

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"matchmaker/internal/matching/models"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
)

// PostgresStore persists ideal types with the preference set as JSONB. The
// deal-breaker kinds are duplicated into a text[] column for operator queries.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed ideal type store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save upserts the ideal type. A missing profile yields sentinel.ErrNotFound.
func (s *PostgresStore) Save(ctx context.Context, it *models.IdealType) error {
	if it == nil {
		return fmt.Errorf("ideal type is required")
	}
	prefs, err := json.Marshal(it.Preferences)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	kinds := make([]string, len(it.Preferences.DealBreakers))
	for i, k := range it.Preferences.DealBreakers {
		kinds[i] = string(k)
	}

	query := `
		INSERT INTO ideal_types (profile_id, preferences, deal_breakers, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id) DO UPDATE SET
			preferences = EXCLUDED.preferences,
			deal_breakers = EXCLUDED.deal_breakers,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query, uuid.UUID(it.ProfileID), prefs, pq.Array(kinds), it.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("profile %s: %w", it.ProfileID, sentinel.ErrNotFound)
		}
		return fmt.Errorf("save ideal type: %w", err)
	}
	return nil
}

// FindByProfileID returns sentinel.ErrNotFound when none was authored.
func (s *PostgresStore) FindByProfileID(ctx context.Context, profileID id.ProfileID) (*models.IdealType, error) {
	query := `SELECT profile_id, preferences, updated_at FROM ideal_types WHERE profile_id = $1`
	it, err := scanIdealType(s.db.QueryRowContext(ctx, query, uuid.UUID(profileID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ideal type not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find ideal type: %w", err)
	}
	return it, nil
}

func (s *PostgresStore) FindByProfileIDs(ctx context.Context, profileIDs []id.ProfileID) (map[id.ProfileID]*models.IdealType, error) {
	out := make(map[id.ProfileID]*models.IdealType, len(profileIDs))
	if len(profileIDs) == 0 {
		return out, nil
	}
	ids := make([]string, len(profileIDs))
	for i, pid := range profileIDs {
		ids[i] = pid.String()
	}

	query := `SELECT profile_id, preferences, updated_at FROM ideal_types WHERE profile_id = ANY($1::uuid[])`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find ideal types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanIdealType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ideal type: %w", err)
		}
		out[it.ProfileID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ideal types: %w", err)
	}
	return out, nil
}

type idealTypeRow interface {
	Scan(dest ...any) error
}

func scanIdealType(row idealTypeRow) (*models.IdealType, error) {
	var (
		pid     uuid.UUID
		raw     []byte
		updated time.Time
	)
	if err := row.Scan(&pid, &raw, &updated); err != nil {
		return nil, err
	}
	it := &models.IdealType{ProfileID: id.ProfileID(pid), UpdatedAt: updated}
	// Decoding rejects kinds and levels that left the catalog.
	if err := json.Unmarshal(raw, &it.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences of %s: %v: %w", it.ProfileID, err, sentinel.ErrInvalidInput)
	}
	return it, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
