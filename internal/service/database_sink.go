package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	pgrepo "github.com/aliskhannn/assessgen/internal/infra/postgres/repository"
)

// DatabaseSink publishes banks to PostgreSQL, replacing the previous items of
// each subtopic in one transaction.
type DatabaseSink struct {
	tr Transactor
}

func NewDatabaseSink(tr Transactor) *DatabaseSink {
	return &DatabaseSink{tr: tr}
}

// EnsureSchema creates the items table if it does not exist.
func (s *DatabaseSink) EnsureSchema(ctx context.Context) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return pgrepo.NewBankRepository(tx).EnsureSchema(ctx)
	})
}

// Save replaces the items stored for the bank's curriculum and path.
func (s *DatabaseSink) Save(ctx context.Context, run entities.Run, bank entities.Bank) (string, error) {
	curriculum, path := bank.Subtopic.Curriculum, bank.Subtopic.Path()

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := pgrepo.NewBankRepository(tx)

		if _, err := repo.DeleteByPath(ctx, curriculum, path); err != nil {
			return err
		}

		n, err := repo.Insert(ctx, run.ID, run.StartedAt, bank)
		if err != nil {
			return err
		}
		if n != int64(len(bank.Rows)) {
			return fmt.Errorf("insert items of %s: copied %d of %d rows", path, n, len(bank.Rows))
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return "postgres:" + curriculum + "/" + path, nil
}

// CountRun returns how many items run stored.
func (s *DatabaseSink) CountRun(ctx context.Context, run entities.Run) (int64, error) {
	var n int64
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		n, err = pgrepo.NewBankRepository(tx).CountByRun(ctx, run.ID)
		return err
	})
	return n, err
}
