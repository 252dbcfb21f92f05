package postgres

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SQLQuerier is satisfied by *sqlx.DB and *sqlx.Tx
type SQLQuerier interface {
	sqlx.ExtContext
}

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
