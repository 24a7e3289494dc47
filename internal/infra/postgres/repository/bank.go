package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	"github.com/aliskhannn/assessgen/internal/infra/postgres"
)

const itemsTable = "assessment_items"

const createItemsTable = `
	CREATE TABLE IF NOT EXISTS assessment_items (
		id            BIGSERIAL PRIMARY KEY,
		run_id        UUID        NOT NULL,
		curriculum    TEXT        NOT NULL,
		path          TEXT        NOT NULL,
		title_item    TEXT        NOT NULL,
		position      INT         NOT NULL,
		question      TEXT        NOT NULL,
		answer        TEXT        NOT NULL,
		explanation   TEXT        NOT NULL,
		picture_url   TEXT        NOT NULL DEFAULT '',
		options       TEXT[]      NOT NULL,
		test_name     TEXT        NOT NULL,
		content_type  TEXT        NOT NULL,
		question_type TEXT        NOT NULL,
		generated_at  TIMESTAMPTZ NOT NULL,
		UNIQUE (curriculum, path, position)
	);
	CREATE INDEX IF NOT EXISTS assessment_items_run_id_idx ON assessment_items (run_id);
`

// itemColumns is the column order of ItemRows.
var itemColumns = []string{
	"run_id", "curriculum", "path", "title_item", "position",
	"question", "answer", "explanation", "picture_url", "options",
	"test_name", "content_type", "question_type", "generated_at",
}

// BankRepository stores generated banks in the assessment_items table.
type BankRepository struct {
	db postgres.DBTX
}

// NewBankRepository creates a new BankRepository on a pool or a transaction.
func NewBankRepository(db postgres.DBTX) *BankRepository {
	return &BankRepository{db: db}
}

// EnsureSchema creates the assessment_items table if it does not exist.
func (r *BankRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createItemsTable); err != nil {
		return fmt.Errorf("create %s: %w", itemsTable, err)
	}
	return nil
}

// DeleteByPath removes every item of the subtopic at path in curriculum.
// Curricula reuse paths such as "Chapter 1/Comparing Numbers".
func (r *BankRepository) DeleteByPath(ctx context.Context, curriculum, path string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM assessment_items WHERE curriculum = $1 AND path = $2`, curriculum, path)
	if err != nil {
		return 0, fmt.Errorf("delete items of %s/%s: %w", curriculum, path, err)
	}
	return tag.RowsAffected(), nil
}

// Insert copies every row of bank into assessment_items.
func (r *BankRepository) Insert(ctx context.Context, runID uuid.UUID, generatedAt time.Time, bank entities.Bank) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{itemsTable},
		itemColumns,
		pgx.CopyFromRows(ItemRows(runID, generatedAt, bank)),
	)
	if err != nil {
		return 0, fmt.Errorf("insert items of %s: %w", bank.Subtopic.Path(), err)
	}
	return n, nil
}

// CountByRun returns how many items a run stored.
func (r *BankRepository) CountByRun(ctx context.Context, runID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM assessment_items WHERE run_id = $1`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items of run %s: %w", runID, err)
	}
	return n, nil
}

// ItemRows maps bank to assessment_items values in itemColumns order.
// Positions are 1-based, matching the Q<n> suffix of the title item.
func ItemRows(runID uuid.UUID, generatedAt time.Time, bank entities.Bank) [][]any {
	rows := make([][]any, 0, len(bank.Rows))
	for i, row := range bank.Rows {
		rows = append(rows, []any{
			runID,
			bank.Subtopic.Curriculum,
			row.Path,
			row.TitleItem,
			i + 1,
			row.Question,
			row.Answer,
			row.Explanation,
			row.PictureURL,
			row.OptionList(),
			row.TestName,
			row.ContentType,
			string(row.Type),
			generatedAt.UTC(),
		})
	}
	return rows
}
