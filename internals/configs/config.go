package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	JWTExpiry time.Duration

	// Interval sweep penyelesaian poin (lihat worker settlement)
	SettlementInterval time.Duration

	// Radius geofence default (meter) kalau activity tidak set sendiri
	DefaultCheckinRadiusM int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	JWTExpiry = getEnvDuration("JWT_EXPIRY", 24*time.Hour)
	SettlementInterval = getEnvDuration("SETTLEMENT_INTERVAL", time.Minute)
	DefaultCheckinRadiusM = getEnvInt("CHECKIN_RADIUS_M", 300)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("⚠️ %s tidak valid (%q), pakai default %d", key, v, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("⚠️ %s tidak valid (%q), pakai default %s", key, v, def)
	}
	return def
}
