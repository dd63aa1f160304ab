package controller

import (
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityRows(activityID uuid.UUID, points int, checkinRequired bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"activity_id", "activity_title", "activity_points", "activity_checkin_required",
	}).AddRow(activityID, "Donor Darah", points, checkinRequired)
}

func TestApproveParticipant(t *testing.T) {
	adminID := uuid.New()
	activityID := uuid.New()
	participantID := uuid.New()
	userID := uuid.New()

	approveURL := "/api/a/activities/" + activityID.String() +
		"/participants/" + participantID.String() + "/approve"

	t.Run("approve activity tanpa check-in: poin langsung di-settle", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "activities" WHERE activity_id`).
			WillReturnRows(activityRows(activityID, 50, false))
		mock.ExpectQuery(`SELECT \* FROM "activity_participants" WHERE participant_id`).
			WillReturnRows(sqlmock.NewRows([]string{
				"participant_id", "participant_activity_id", "participant_user_id", "participant_status",
			}).AddRow(participantID, activityID, userID, "pending"))
		mock.ExpectExec(`UPDATE "activity_participants" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE activity_participants\s+SET participant_points_awarded = TRUE`).
			WithArgs(participantID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE users\s+SET points = points \+`).
			WithArgs(50, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "points_history"`).
			WillReturnRows(sqlmock.NewRows([]string{"points_history_id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		resp, err := app.Test(jsonRequest(t, "POST", approveURL, fiber.Map{"status": "approved"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"points_awarded":true`)
	})

	t.Run("status di luar approved/rejected: 400 tanpa SQL", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		resp, err := app.Test(jsonRequest(t, "POST", approveURL, fiber.Map{"status": "maybe"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApproveCheckin(t *testing.T) {
	adminID := uuid.New()
	activityID := uuid.New()
	participantID := uuid.New()
	userID := uuid.New()
	checkinAt := time.Now().Add(-time.Hour)

	approveURL := "/api/a/activities/" + activityID.String() +
		"/participants/" + participantID.String() + "/checkin/approve"

	participantCols := []string{
		"participant_id", "participant_activity_id", "participant_user_id",
		"participant_status", "participant_checkin_status", "participant_checkin_time",
	}

	t.Run("approve check-in: settle sinkron", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "activities" WHERE activity_id`).
			WillReturnRows(activityRows(activityID, 75, true))
		mock.ExpectQuery(`SELECT \* FROM "activity_participants" WHERE participant_id`).
			WillReturnRows(sqlmock.NewRows(participantCols).
				AddRow(participantID, activityID, userID, "approved", "pending", checkinAt))
		mock.ExpectExec(`UPDATE activity_participants\s+SET participant_checkin_status`).
			WithArgs("approved", nil, participantID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE activity_participants\s+SET participant_points_awarded = TRUE`).
			WithArgs(participantID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE users\s+SET points = points \+`).
			WithArgs(75, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "points_history"`).
			WillReturnRows(sqlmock.NewRows([]string{"points_history_id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		resp, err := app.Test(jsonRequest(t, "POST", approveURL, fiber.Map{"status": "approved"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"points_awarded":true`)
	})

	t.Run("participant belum check-in: 400 dan rollback", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "activities" WHERE activity_id`).
			WillReturnRows(activityRows(activityID, 75, true))
		mock.ExpectQuery(`SELECT \* FROM "activity_participants" WHERE participant_id`).
			WillReturnRows(sqlmock.NewRows(participantCols).
				AddRow(participantID, activityID, userID, "approved", nil, nil))
		mock.ExpectRollback()

		resp, err := app.Test(jsonRequest(t, "POST", approveURL, fiber.Map{"status": "approved"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
