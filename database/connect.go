package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"studio_booking/config"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB() error {
	p := config.Config("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST", "localhost"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	utils.Logger.Info().Msg("Connection Opened to Database")

	if err := Migrate(DB); err != nil {
		return err
	}
	utils.Logger.Info().Msg("Database Migrated")

	if config.Config("SEED_DEMO") == "true" {
		SeedData(DB)
	}
	return nil
}

// Migrate creates the schema. On Postgres the one-hour gap between bookings of
// a coach is also enforced by an exclusion constraint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Booking{},
		&model.Member{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}
	return db.Exec(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bookings_coach_gap') THEN
		ALTER TABLE bookings ADD CONSTRAINT bookings_coach_gap
			EXCLUDE USING gist (coach WITH =, date WITH =, int4range(start_minute, start_minute + 60) WITH &&);
	END IF;
END $$`).Error
}

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not answer.
func ConnectRedis() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		utils.Logger.Warn().Err(err).Str("addr", addr).Msg("redis unavailable, slot cache disabled")
		_ = rdb.Close()
		return nil
	}
	utils.Logger.Info().Str("addr", addr).Msg("redis connected")
	return rdb
}
