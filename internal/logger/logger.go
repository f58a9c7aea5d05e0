package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// NewNamed builds a zap logger for the given environment and names it after the service.
// development and test use the human-readable development config; anything else gets JSON.
func NewNamed(env, service string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	switch env {
	case "development", "test":
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log.Named(service).With(zap.String("env", env)), nil
}
