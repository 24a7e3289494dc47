package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/assessgen/internal/config"
)

// New returns a production logger for the production environment and a
// development logger otherwise. Every entry carries the environment name.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		lg  *zap.Logger
		err error
	)
	if cfg.Env == "production" {
		lg, err = zap.NewProduction()
	} else {
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return lg.Named("assessgen").With(zap.String("env", cfg.Env)), nil
}
