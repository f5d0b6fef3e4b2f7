package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

// ModelCacheRepo keeps the last fetched gateway model catalog so the picker
// can populate before (or without) a network round trip.
type ModelCacheRepo struct{ *Repo }

func NewModelCacheRepo(db *sql.DB) *ModelCacheRepo { return &ModelCacheRepo{NewRepo(db)} }

// Save replaces the cached catalog wholesale.
func (r *ModelCacheRepo) Save(ctx context.Context, models []domain.ModelInfo) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM model_cache`); err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		now := time.Now().UTC().Format(time.RFC3339)
		ib := r.SQ.Insert("model_cache").Columns("id", "name", "description", "context_tokens", "updated_at")
		for _, m := range models {
			ib = ib.Values(m.ID, m.Name, m.Description, m.ContextTokens, now)
		}
		sqlStr, args, err := ib.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, sqlStr, args...)
		return err
	})
}

func (r *ModelCacheRepo) List(ctx context.Context) ([]domain.ModelInfo, error) {
	q := r.SQ.Select("id", "name", "description", "context_tokens").From("model_cache").OrderBy("name")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.ModelInfo
	for rows.Next() {
		var m domain.ModelInfo
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.ContextTokens); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
