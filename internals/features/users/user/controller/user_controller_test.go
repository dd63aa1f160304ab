package controller

import (
	"io"
	"net/http/httptest"
	"testing"

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

func newUserTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_role", "user")
		return c.Next()
	})

	ctrl := &UserController{DB: db}
	app.Get("/api/users/me/points", ctrl.GetMyPoints)

	return app, mock
}

func TestGetMyPoints(t *testing.T) {
	userID := uuid.New()

	t.Run("saldo + riwayat terakhir", func(t *testing.T) {
		app, mock := newUserTestApp(t, userID)

		mock.ExpectQuery(`SELECT points FROM users WHERE id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(120))
		mock.ExpectQuery(`SELECT \* FROM "points_history" WHERE points_history_user_id`).
			WithArgs(userID, 10).
			WillReturnRows(sqlmock.NewRows([]string{"points_history_id"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/me/points", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"points":120`)
	})

	t.Run("user terhapus: 404, bukan saldo 0", func(t *testing.T) {
		app, mock := newUserTestApp(t, userID)

		// soft-deleted / tidak ada: query tidak mengembalikan baris
		mock.ExpectQuery(`SELECT points FROM users WHERE id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/me/points", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
