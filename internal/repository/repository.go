// Package repository contains the persistence layer. Each entity gets an
// interface over *sqlx.DB with sentinel errors for missing rows, so services
// can branch with errors.Is without seeing SQL details.
package repository

import (
	"database/sql"
	"errors"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
