package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB opens a GORM connection backed by sqlmock so the generated
// SQL can be asserted without a live database.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestEventRepository_FindByIDIsOwnerScoped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "event_date", "start_time", "end_time"}).
		AddRow(5, 1, "Standup", "2026-02-09", "09:00", "09:15")

	// The WHERE clause must constrain both id and owner_id
	mock.ExpectQuery("SELECT (.+) FROM `events` WHERE (.*)owner_id = (.+)").
		WillReturnRows(rows)

	event, err := repo.FindByID(5, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(5), event.ID)
	require.Equal(t, uint64(1), event.OwnerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_FindByIDOwnerMismatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	// Wrong owner: the scoped query matches no rows
	mock.ExpectQuery("SELECT (.+) FROM `events` WHERE (.*)owner_id = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(5, 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteIsOwnerScoped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `events` WHERE (.*)owner_id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(5, 1)
	require.NoError(t, err)
	require.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteReportsNoMatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `events` WHERE (.*)owner_id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(5, 99)
	require.NoError(t, err)
	require.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateTouchesOnlyGivenColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	title := "Daily Standup"

	mock.ExpectBegin()
	// Only title (plus updated_at bookkeeping) may appear in the SET list
	mock.ExpectExec("UPDATE `events` SET `title`=(.+),`updated_at`=(.+) WHERE (.*)owner_id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "event_date", "start_time", "end_time"}).
		AddRow(5, 1, title, "2026-02-09", "09:00", "09:15")
	mock.ExpectQuery("SELECT (.+) FROM `events` WHERE (.*)owner_id = (.+)").
		WillReturnRows(rows)

	event, err := repo.Update(5, 1, EventUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, event.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_EmptyUpdateSkipsWrite(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	// No UPDATE expected, only the re-read of the current row
	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "event_date", "start_time", "end_time"}).
		AddRow(5, 1, "Standup", "2026-02-09", "09:00", "09:15")
	mock.ExpectQuery("SELECT (.+) FROM `events` WHERE (.*)owner_id = (.+)").
		WillReturnRows(rows)

	event, err := repo.Update(5, 1, EventUpdate{})
	require.NoError(t, err)
	require.Equal(t, "Standup", event.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
