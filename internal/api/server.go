package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"fjacquet/stmt-ledger/internal/logging"
)

// NewApp builds the fiber application with h's routes.
func NewApp(h *Handler, bodyLimitMB int) *fiber.App {
	if bodyLimitMB < 1 {
		bodyLimitMB = 32
	}
	app := fiber.New(fiber.Config{
		AppName:               "stmt-ledger",
		BodyLimit:             bodyLimitMB << 20,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})
	h.Register(app)
	return app
}

// Serve listens on addr until ctx is done, then shuts the app down.
func Serve(ctx context.Context, app *fiber.App, addr string, logger logging.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", logging.F("address", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server")
		return app.Shutdown()
	}
}
