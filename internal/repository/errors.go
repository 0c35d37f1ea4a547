// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers to tell a
// missing record from a constraint violation from an infrastructure
// failure.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrVenueNotFound is returned when a venue id does not exist.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id does not exist.
var ErrArtistNotFound = errors.New("artist not found")

// ErrDuplicateShow is returned when a show with the same venue, artist and
// start time already exists.
var ErrDuplicateShow = errors.New("show already booked")

// ErrUnknownParty is returned when a show references a venue or artist id
// that does not exist.
var ErrUnknownParty = errors.New("show references unknown venue or artist")

// MySQL server error numbers the repositories translate.
const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

// mysqlErrNumber extracts the server error number, or 0 when err is not a
// MySQL server error.
func mysqlErrNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}
