package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

// Sink receives validated banks. Save returns where the bank ended up, for
// logging.
type Sink interface {
	Save(ctx context.Context, run entities.Run, bank entities.Bank) (string, error)
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
