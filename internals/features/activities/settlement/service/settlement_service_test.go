package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	activityModel "klubku_backend/internals/features/activities/activity/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func testActivity() *activityModel.ActivityModel {
	return &activityModel.ActivityModel{
		ActivityID:     uuid.New(),
		ActivityTitle:  "Bersih Pantai",
		ActivityPoints: 75,
	}
}

func TestAwardParticipantPoints(t *testing.T) {
	participantID := uuid.New()
	userID := uuid.New()

	t.Run("award pertama: klaim, kredit, ledger", func(t *testing.T) {
		db, mock := newMockDB(t)
		activity := testActivity()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE activity_participants\s+SET participant_points_awarded = TRUE`).
			WithArgs(participantID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE users\s+SET points = points \+`).
			WithArgs(activity.ActivityPoints, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "points_history"`).
			WillReturnRows(sqlmock.NewRows([]string{"points_history_id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		err := db.Transaction(func(tx *gorm.DB) error {
			awarded, err := AwardParticipantPoints(tx, activity, participantID, userID)
			require.NoError(t, err)
			assert.True(t, awarded)
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sudah pernah di-settle: no-op tanpa kredit", func(t *testing.T) {
		db, mock := newMockDB(t)
		activity := testActivity()

		mock.ExpectBegin()
		// klaim gagal flip flag → tidak boleh ada UPDATE users / INSERT ledger
		mock.ExpectExec(`UPDATE activity_participants\s+SET participant_points_awarded = TRUE`).
			WithArgs(participantID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := db.Transaction(func(tx *gorm.DB) error {
			awarded, err := AwardParticipantPoints(tx, activity, participantID, userID)
			require.NoError(t, err)
			assert.False(t, awarded)
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user hilang saat kredit: transaksi rollback", func(t *testing.T) {
		db, mock := newMockDB(t)
		activity := testActivity()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE activity_participants\s+SET participant_points_awarded = TRUE`).
			WithArgs(participantID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE users\s+SET points = points \+`).
			WithArgs(activity.ActivityPoints, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := db.Transaction(func(tx *gorm.DB) error {
			_, err := AwardParticipantPoints(tx, activity, participantID, userID)
			return err
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tidak ditemukan")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
