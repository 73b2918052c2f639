// internal/middleware/middleware.go
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// SetupGlobalMiddleware mendaftarkan middleware standar untuk semua request.
// Urutan pendaftaran penting: recover paling awal, kompresi paling akhir.
func SetupGlobalMiddleware(app *fiber.App) {
	// Recover menangkap panic dari handler agar server tidak crash.
	app.Use(recover.New())
	zlog.Info().Msg("Recover middleware registered")

	// X-Request-ID per request, tersimpan di c.Locals("requestid") untuk tracing.
	app.Use(requestid.New())
	zlog.Info().Msg("RequestID middleware registered")

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://127.0.0.1:5173, http://localhost:3000",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	zlog.Info().Msg("CORS middleware registered")

	app.Use(limiter.New(limiter.Config{
		Max:               200,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))
	zlog.Info().Msg("Rate limiter middleware registered")

	// Request logger custom berbasis Zerolog.
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		statusCode := c.Response().StatusCode()

		requestID := ""
		if v := c.Locals("requestid"); v != nil {
			if idStr, ok := v.(string); ok {
				requestID = idStr
			}
		}

		// Level log mengikuti hasil request: 5xx error, 4xx warn, sisanya info.
		var logEvent *zerolog.Event
		switch {
		case err != nil:
			logEvent = zlog.Warn().Err(err)
		case statusCode >= 500:
			logEvent = zlog.Error()
		case statusCode >= 400:
			logEvent = zlog.Warn()
		default:
			logEvent = zlog.Info()
		}

		fields := logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent))
		if requestID != "" {
			fields = fields.Str("request_id", requestID)
		}
		fields.Msg("Request handled")

		// Error diteruskan agar ditangani ErrorHandler global.
		return err
	})
	zlog.Info().Msg("Request logger middleware registered")

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	zlog.Info().Msg("Compress middleware registered")
}
