package postgre

import (
	"github.com/jmoiron/sqlx"

	"engagement-srv/internal/export/repository"
	"engagement-srv/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New - Factory
func New(db *sqlx.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
