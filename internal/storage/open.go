package storage

import (
	"github.com/rs/zerolog"

	"wedding-planner/internal/repository"
	"wedding-planner/internal/storage/sqlstore"
)

// DriverFile selects the JSON snapshot store; its DSN is the file path.
const DriverFile = "file"

// Open returns the store selected by driver: "file", "sqlite" or "postgres".
func Open(driver, dsn string, log zerolog.Logger) (repository.Store, error) {
	if driver == DriverFile {
		s, err := NewStorage(dsn)
		if err != nil {
			return nil, err
		}
		log.Info().Str("component", "storage").Str("file", dsn).Msg("Using snapshot store")
		return s, nil
	}

	s, err := sqlstore.Open(driver, dsn, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}
