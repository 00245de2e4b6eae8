package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-finder/config"
	v1 "weather-finder/internal/controllers/http/v1"
	"weather-finder/internal/repositories"
	"weather-finder/internal/services/weather"
	"weather-finder/pkg/httpserver"
	"weather-finder/pkg/observe"
)

// @title Weather Finder API
// @version 1.0.0
// @description City search and 7-day forecast views backed by WeatherAPI.com.

// @contact.name Weather Finder Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Forecast detail views
// @tag.name Search
// @tag.description City autocomplete
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot init sentry:", err)
			os.Exit(1)
		}
		writers = append(writers, hook)
	}

	l := observe.NewLogger(observe.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
		Writers: writers,
	})

	read, write, idle := cnf.ServerTimeouts()
	app := httpserver.InitFiberServer(cnf.App.Name, httpserver.Timeouts{
		Read:  read,
		Write: write,
		Idle:  idle,
	})

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot create weather repository", map[string]any{"err": err.Error()})
	}

	service := weather.NewService(repo, l)

	v1.NewRouter(
		app,
		service,
		cnf.Suggestions.DisplayLimit,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
		"env":      cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		if hook != nil {
			_ = hook.Sync()
		}
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
