package language

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const sqlStateForeignKeyViolation = "23503"

// Repository defines language data access interface
type Repository interface {
	// Vocabulary (read-only; seeding is external)
	GetLanguage(ctx context.Context, code string) (*Language, error)
	ListLanguages(ctx context.Context) ([]*Language, error)

	// Ability operations
	UpsertAbility(ctx context.Context, ability *LanguageAbility) error
	RemoveAbility(ctx context.Context, userID int64, code string) error
	ListAbilities(ctx context.Context, userID int64) ([]*LanguageAbility, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new language repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetLanguage(ctx context.Context, code string) (*Language, error) {
	query := `SELECT code, name FROM languages WHERE code = $1`
	var lang Language
	err := r.db.GetContext(ctx, &lang, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &lang, nil
}

func (r *repository) ListLanguages(ctx context.Context) ([]*Language, error) {
	query := `SELECT code, name FROM languages ORDER BY name`
	var languages []*Language
	err := r.db.SelectContext(ctx, &languages, query)
	return languages, err
}

func (r *repository) UpsertAbility(ctx context.Context, ability *LanguageAbility) error {
	// The unique constraint on (user_id, language_code) makes concurrent
	// upserts for the same pair converge on a single row; never replace
	// this with a read-then-write check.
	query := `
		INSERT INTO language_abilities (user_id, language_code, fluency)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, language_code)
		DO UPDATE SET fluency = EXCLUDED.fluency
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		ability.UserID,
		ability.LanguageCode,
		ability.Fluency,
	).Scan(&ability.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == sqlStateForeignKeyViolation {
			// Vocabulary row vanished between the service's existence
			// check and the insert
			return ErrUnknownLanguage
		}
		return err
	}
	return nil
}

func (r *repository) RemoveAbility(ctx context.Context, userID int64, code string) error {
	// Idempotent: deleting an absent row is not an error
	query := `DELETE FROM language_abilities WHERE user_id = $1 AND language_code = $2`
	_, err := r.db.ExecContext(ctx, query, userID, code)
	return err
}

func (r *repository) ListAbilities(ctx context.Context, userID int64) ([]*LanguageAbility, error) {
	query := `
		SELECT id, user_id, language_code, fluency
		FROM language_abilities
		WHERE user_id = $1
	`
	var abilities []*LanguageAbility
	err := r.db.SelectContext(ctx, &abilities, query, userID)
	return abilities, err
}
