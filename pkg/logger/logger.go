// Package logger constructs the application's zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New creates a zap logger for the given mode ("development" or
// "production"). Development mode uses the human-readable console encoder,
// production mode emits JSON.
func New(mode string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	switch mode {
	case "production":
		log, err = zap.NewProduction()
	case "development", "":
		log, err = zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
