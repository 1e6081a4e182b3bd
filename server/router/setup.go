package router

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ziflex/lecho/v3"

	"github.com/starudream/e2e-kit/server/config"
	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/internal/echox"
	"github.com/starudream/e2e-kit/server/logger"
)

// New builds the http app serving the settings of target and the browser
// launch configuration.
func New(target env.Settings) *echo.Echo {
	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Logger = lecho.From(logger.Logger)
	app.JSONSerializer = echox.JSONSerializer{}
	app.Validator = echox.Validator{}
	app.HTTPErrorHandler = echox.ErrorHandler(app)

	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())

	setupSwagger(app)
	setupRoutes(app, &handler{target: target})

	return app
}

func Start(ctx context.Context, wg *sync.WaitGroup, target env.Settings) {
	app := New(target)

	ln, err := net.Listen("tcp", config.G().ServerAddr)
	if err != nil {
		logger.Fatal().Err(err).Msg("http server listen error")
	}

	go func() {
		logger.Info().Str("addr", ln.Addr().String()).Msg("http server starting")
		app.Listener = ln
		err = app.Start("")
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server run error")
		}
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Warn().Msg("http server stopping")
		_ctx, _cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer _cancel()
		_ = app.Shutdown(_ctx)
		logger.Info().Msg("http server stopped")
	}()
}
