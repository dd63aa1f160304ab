package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

// app uji dengan locals token admin sudah terisi (jalur middleware JWT
// diuji terpisah di paket middlewares/auth)
func newAdminTestApp(t *testing.T, adminID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", adminID)
		c.Locals("user_role", "admin")
		return c.Next()
	})

	activityCtrl := &ActivityController{DB: db}
	approvalCtrl := &ApprovalController{DB: db}
	app.Post("/api/a/activities", activityCtrl.CreateActivity)
	app.Patch("/api/a/activities/:id/status", activityCtrl.UpdateActivityStatus)
	app.Post("/api/a/activities/:activityId/participants/:participantId/approve",
		approvalCtrl.ApproveParticipant)
	app.Post("/api/a/activities/:activityId/participants/:participantId/checkin/approve",
		approvalCtrl.ApproveCheckin)

	return app, mock
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUpdateActivityStatus(t *testing.T) {
	adminID := uuid.New()
	activityID := uuid.New()

	t.Run("publish draft berhasil", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "activities" SET "activity_status"=`).
			WithArgs("published", sqlmock.AnyArg(), activityID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := jsonRequest(t, "PATCH", "/api/a/activities/"+activityID.String()+"/status",
			fiber.Map{"activity_status": "published"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "published")
	})

	t.Run("activity tidak ada: 404", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "activities" SET "activity_status"=`).
			WithArgs("cancelled", sqlmock.AnyArg(), activityID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		req := jsonRequest(t, "PATCH", "/api/a/activities/"+activityID.String()+"/status",
			fiber.Map{"activity_status": "cancelled"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status tidak dikenal: 400 tanpa SQL", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		req := jsonRequest(t, "PATCH", "/api/a/activities/"+activityID.String()+"/status",
			fiber.Map{"activity_status": "archived"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateActivity(t *testing.T) {
	adminID := uuid.New()
	typeID := uuid.New()
	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	validBody := func() fiber.Map {
		return fiber.Map{
			"activity_title":                 "Donor Darah",
			"activity_description":           "Donor darah bareng PMI",
			"activity_type_id":               typeID,
			"activity_points":                50,
			"activity_start_time":            start,
			"activity_end_time":              start.Add(3 * time.Hour),
			"activity_registration_end_time": start.Add(-2 * time.Hour),
			"activity_checkin_radius_m":      150,
		}
	}

	t.Run("berhasil dibuat sebagai draft", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "activity_types"`).
			WithArgs(typeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "activities"`).
			WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		resp, err := app.Test(jsonRequest(t, "POST", "/api/a/activities", validBody()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "draft")
	})

	t.Run("tipe activity tidak ada: 400", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "activity_types"`).
			WithArgs(typeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		resp, err := app.Test(jsonRequest(t, "POST", "/api/a/activities", validBody()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("field wajib kosong: 400 tanpa SQL", func(t *testing.T) {
		app, mock := newAdminTestApp(t, adminID)

		body := validBody()
		body["activity_title"] = ""
		resp, err := app.Test(jsonRequest(t, "POST", "/api/a/activities", body))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
