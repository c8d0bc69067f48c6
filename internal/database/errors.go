package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// MySQL server error numbers.
const (
	mysqlDuplicateEntry        = 1062
	mysqlNoReferencedRow       = 1452
	mysqlNoReferencedRowLegacy = 1216
)

// PostgreSQL SQLSTATE codes.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a duplicate key error from either driver.
func IsUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}

	return false
}

// IsForeignKeyViolation reports whether err is a missing parent row error from either driver.
func IsForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlNoReferencedRow || mysqlErr.Number == mysqlNoReferencedRowLegacy
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqForeignKeyViolation
	}

	return false
}
