package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlonxteban/fyyur/internal/model"
)

var venueCols = []string{"id", "name", "genres", "city", "state", "address", "phone", "image_link",
	"facebook_link", "website", "seeking_talent", "seeking_description"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func TestVenueRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	v := &model.Venue{Name: "The Fillmore", City: "SF", State: "CA", Address: "1805 Geary", Phone: "415-555-0100"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO venues")).
		WithArgs("The Fillmore", "", "SF", "CA", "1805 Geary", "415-555-0100", "", "", "", false, "").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	require.NoError(t, NewVenueRepo(db).Create(context.Background(), v))
	assert.Equal(t, uint64(42), v.ID)
}

func TestVenueRepo_Create_RollsBackOnError(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO venues")).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := NewVenueRepo(db).Create(context.Background(), &model.Venue{Name: "Blue Note"})
	assert.EqualError(t, err, "connection reset")
}

func TestVenueRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues WHERE id = ?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(venueCols))

	_, err := NewVenueRepo(db).GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepo_SearchByName(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) LIKE ?")).
		WithArgs("%fill%").
		WillReturnRows(sqlmock.NewRows(venueCols).
			AddRow(1, "The Fillmore", "Rock,Jazz", "SF", "CA", "1805 Geary", "415-555-0100", "", "", "", true, "looking"))

	got, err := NewVenueRepo(db).SearchByName(context.Background(), "FILL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Fillmore", got[0].Name)
	assert.True(t, got[0].SeekingTalent)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%%", containsPattern(""))
	assert.Equal(t, `%100\% live\_%`, containsPattern("100% LIVE_"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestVenueRepo_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ? FOR UPDATE")).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	err := NewVenueRepo(db).Update(context.Background(), &model.Venue{ID: 3, Name: "Gone"})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepo_Update_OverwritesAllColumns(t *testing.T) {
	db, mock := newMock(t)
	v := &model.Venue{ID: 3, Name: "The Fillmore", City: "SF"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues")).WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE venues")).
		WithArgs("The Fillmore", "", "SF", "", "", "", "", "", "", false, "", uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, NewVenueRepo(db).Update(context.Background(), v))
}

func TestVenueRepo_Delete_MissingIsNoop(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues WHERE id = ?")).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := NewVenueRepo(db).Delete(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestArtistRepo_GetByID(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists WHERE id = ?")).
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "genres", "city", "state", "phone", "image_link",
			"facebook_link", "website", "seeking_venue", "seeking_description"}).
			AddRow(4, "Guns N Petals", "Rock n Roll", "San Francisco", "CA", "326-123-5000", "", "", "", true, "gigs"))

	a, err := NewArtistRepo(db).GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", a.Name)
	assert.True(t, a.SeekingVenue)
}

func TestArtistRepo_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM artists")).WithArgs(uint64(5)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := NewArtistRepo(db).Update(context.Background(), &model.Artist{ID: 5})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestShowRepo_Create_TranslatesConstraintErrors(t *testing.T) {
	start := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		number uint16
		want   error
	}{
		{"duplicate booking", 1062, ErrDuplicateShow},
		{"unknown foreign key", 1452, ErrUnknownParty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shows")).
				WithArgs(uint64(1), uint64(2), start).
				WillReturnError(&mysql.MySQLError{Number: tc.number, Message: "constraint"})
			mock.ExpectRollback()

			err := NewShowRepo(db).Create(context.Background(), model.Show{VenueID: 1, ArtistID: 2, StartTime: start})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestShowRepo_ListByVenue(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.venue_id = ?")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "artist_id", "start_time", "v.name", "v.image_link", "a.name", "a.image_link"}).
			AddRow(1, 2, start, "The Fillmore", "v.png", "Guns N Petals", "a.png"))

	got, err := NewShowRepo(db).ListByVenue(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Guns N Petals", got[0].ArtistName)
	assert.True(t, got[0].StartTime.Equal(start))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(*sql.Tx) error { panic("boom") })
	})
}

func TestWithTx_CommitFailure(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("deadlock"))

	err := WithTx(context.Background(), db, func(*sql.Tx) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit tx")
}
