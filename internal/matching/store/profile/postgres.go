package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
)

// PostgresStore persists profiles in PostgreSQL, one column per attribute.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectProfile = `
	SELECT id, display_name, birth_year, region, height, body_shape, education,
		occupation_status, mbti, smoker, drinking, religion, income, assets,
		books_read, tattoo, exercise, car_owner, gamer, pet_owner, updated_at
	FROM profiles`

// Save upserts a profile.
func (s *PostgresStore) Save(ctx context.Context, p *models.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is required")
	}
	r := p.Record
	query := `
		INSERT INTO profiles (
			id, display_name, birth_year, region, height, body_shape, education,
			occupation_status, mbti, smoker, drinking, religion, income, assets,
			books_read, tattoo, exercise, car_owner, gamer, pet_owner, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			birth_year = EXCLUDED.birth_year,
			region = EXCLUDED.region,
			height = EXCLUDED.height,
			body_shape = EXCLUDED.body_shape,
			education = EXCLUDED.education,
			occupation_status = EXCLUDED.occupation_status,
			mbti = EXCLUDED.mbti,
			smoker = EXCLUDED.smoker,
			drinking = EXCLUDED.drinking,
			religion = EXCLUDED.religion,
			income = EXCLUDED.income,
			assets = EXCLUDED.assets,
			books_read = EXCLUDED.books_read,
			tattoo = EXCLUDED.tattoo,
			exercise = EXCLUDED.exercise,
			car_owner = EXCLUDED.car_owner,
			gamer = EXCLUDED.gamer,
			pet_owner = EXCLUDED.pet_owner,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(p.ID),
		p.DisplayName,
		r.BirthYear,
		string(r.Region),
		r.Height,
		string(r.BodyShape),
		string(r.Education),
		string(r.Occupation),
		nullable(r.MBTI),
		r.Smoker,
		nullable(r.Drinking),
		string(r.Religion),
		nullable(r.Income),
		nullable(r.Assets),
		string(r.BooksRead),
		r.Tattoo,
		string(r.Exercise),
		r.CarOwner,
		r.Gamer,
		r.PetOwner,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// FindByID returns sentinel.ErrNotFound when no profile has the ID.
func (s *PostgresStore) FindByID(ctx context.Context, profileID id.ProfileID) (*models.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx, selectProfile+` WHERE id = $1`, uuid.UUID(profileID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

// FindMatching runs the compiled filter as a WHERE clause. Pages are keyset
// paginated on (updated_at DESC, id) so rows written between pages do not
// shift the next one.
func (s *PostgresStore) FindMatching(ctx context.Context, f filter.Filter, exclude id.ProfileID, after *models.Cursor, limit int) ([]*models.Profile, error) {
	where, args, err := whereClause(f, []any{uuid.UUID(exclude)})
	if err != nil {
		return nil, err
	}
	if after != nil {
		args = append(args, after.UpdatedAt, uuid.UUID(after.ID))
		where = fmt.Sprintf("%s AND (updated_at < $%d OR (updated_at = $%d AND id > $%d))",
			where, len(args)-1, len(args)-1, len(args))
	}
	args = append(args, limit)
	query := fmt.Sprintf("%s WHERE id <> $1 AND %s ORDER BY updated_at DESC, id LIMIT $%d", selectProfile, where, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find matching profiles: %w", err)
	}
	defer rows.Close()

	var out []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}

type profileRow interface {
	Scan(dest ...any) error
}

func scanProfile(row profileRow) (*models.Profile, error) {
	var (
		pid                                  uuid.UUID
		p                                    models.Profile
		region, shape, education, occupation string
		religion, booksRead, exercise        string
		mbti, drinking, income, assets       sql.NullString
	)
	r := &p.Record
	err := row.Scan(&pid, &p.DisplayName, &r.BirthYear, &region, &r.Height, &shape, &education,
		&occupation, &mbti, &r.Smoker, &drinking, &religion, &income, &assets,
		&booksRead, &r.Tattoo, &exercise, &r.CarOwner, &r.Gamer, &r.PetOwner, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.ID = id.ProfileID(pid)
	r.Region = models.Region(region)
	r.BodyShape = models.BodyShape(shape)
	r.Education = scale.Education(education)
	r.Occupation = models.OccupationStatus(occupation)
	r.Religion = models.Religion(religion)
	r.BooksRead = scale.BooksRead(booksRead)
	r.Exercise = scale.Exercise(exercise)
	r.MBTI = fromNull[models.MBTI](mbti)
	r.Drinking = fromNull[models.DrinkingFrequency](drinking)
	r.Income = fromNull[scale.Income](income)
	r.Assets = fromNull[scale.Assets](assets)

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %v: %w", p.ID, err, sentinel.ErrInvalidInput)
	}
	return &p, nil
}

func nullable[T ~string](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}

func fromNull[T ~string](v sql.NullString) *T {
	if !v.Valid {
		return nil
	}
	t := T(v.String)
	return &t
}
