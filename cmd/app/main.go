package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"covoit/cmd/fx/account_fx"
	"covoit/cmd/fx/admin_fx"
	"covoit/cmd/fx/config_fx"
	"covoit/cmd/fx/controllers_fx"
	"covoit/cmd/fx/db_fx"
	"covoit/cmd/fx/message_fx"
	"covoit/cmd/fx/profile_fx"
	"covoit/cmd/fx/session_fx"
	"covoit/cmd/fx/trip_fx"
	"covoit/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		session_fx.Module,
		profile_fx.Module,
		trip_fx.Module,
		message_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logrus.WithField("addr", srv.Addr).Info("Starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logrus.WithError(err).Fatal("HTTP server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
