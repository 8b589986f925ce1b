package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studio_booking/config"
	"studio_booking/database"
	"studio_booking/helper"
	"studio_booking/middleware"
	"studio_booking/router"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// printPasswordHash writes the ADMIN_PASSWORD_HASH line for password.
func printPasswordHash(w io.Writer, password string) error {
	if password == "" {
		return fmt.Errorf("empty password")
	}
	hash, err := helper.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "ADMIN_PASSWORD_HASH=%s\n", hash)
	return err
}

func main() {
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()
	if *hashPassword != "" {
		if err := printPasswordHash(os.Stdout, *hashPassword); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	utils.InitLogger(config.Config("LOG_LEVEL", "info"))

	if err := database.ConnectDB(); err != nil {
		utils.Logger.Fatal().Err(err).Msg("database connection failed")
	}

	rdb := database.ConnectRedis()
	helper.Slots = helper.NewSlotCache(rdb, 5*time.Minute)

	smtp := utils.SMTPConfig{
		Host:     config.Config("SMTP_HOST"),
		Port:     config.Config("SMTP_PORT", "587"),
		Username: config.Config("SMTP_USERNAME"),
		Password: config.Config("SMTP_PASSWORD"),
		From:     config.Config("SMTP_FROM"),
	}
	if err := helper.StartReminderScheduler(database.DB, smtp, config.Config("REMINDER_AT", "18:00"), helper.StudioLocation()); err != nil {
		utils.Logger.Error().Err(err).Msg("reminder scheduler not started")
	}

	app := fiber.New(fiber.Config{
		AppName:      "studio-booking",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Request-ID",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie, X-Request-ID, Content-Disposition",
		MaxAge:           600,
	}))
	app.Use(middleware.RequestLogger())

	router.SetupRoutes(app)

	port := config.Config("PORT", "8002")
	go func() {
		utils.Logger.Info().Str("port", port).Msg("listening")
		if err := app.Listen(":" + port); err != nil {
			utils.Logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		utils.Logger.Warn().Err(err).Msg("server shutdown")
	}

	helper.StopReminderScheduler()
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	utils.Logger.Info().Msg("stopped")
}
