package postgre

import (
	"database/sql"

	"trend-srv/internal/forecast/repository"
	"trend-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.SalesRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
