package postgre

import (
	"database/sql"

	"insight-srv/internal/analysis/repository"
	"insight-srv/pkg/log"
)

type implHistoryRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory
func New(db *sql.DB, l log.Logger) repository.HistoryRepository {
	return &implHistoryRepository{
		db: db,
		l:  l,
	}
}
