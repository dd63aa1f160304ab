package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	activityModel "klubku_backend/internals/features/activities/activity/model"
	activityTypeModel "klubku_backend/internals/features/activities/activity_type/model"
	pointsModel "klubku_backend/internals/features/points/points_history/model"
	exchangeModel "klubku_backend/internals/features/products/exchange/model"
	productModel "klubku_backend/internals/features/products/product/model"
	userModel "klubku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=klubku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate semua tabel inti. Urutan penting: users dulu, baru yang
// punya referensi ke users.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&activityTypeModel.ActivityTypeModel{},
		&activityModel.ActivityModel{},
		&activityModel.ParticipantModel{},
		&productModel.ProductModel{},
		&exchangeModel.ExchangeModel{},
		&pointsModel.PointsHistoryModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}
	log.Println("✅ Migrasi schema selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
