package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"weather-finder/config"
	"weather-finder/internal/display"
	"weather-finder/internal/repositories"
	"weather-finder/internal/services/search"
	"weather-finder/internal/services/weather"
	"weather-finder/pkg/observe"
)

const usage = `Type a city name; every line replaces the search text.
  :open N          show the forecast for suggestion N
  :style short|long  date labels in the forecast rows
  :quit            exit
`

// shell is the interactive front end: a search box backed by a Session and a
// detail view opened from the visible suggestions.
type shell struct {
	service *weather.Service
	session *search.Session
	console *console
	style   display.DateStyle
}

func newShell(service *weather.Service, cnf *config.Config, out io.Writer, l *observe.Logger) *shell {
	sh := &shell{
		service: service,
		console: newConsole(out, cnf.Suggestions.DisplayLimit),
		style:   display.DateShort,
	}
	sh.session = search.NewSession(
		service.Suggestions,
		search.WithDebounce(cnf.Suggestions.Debounce),
		search.WithMinQueryLength(cnf.Suggestions.MinQueryLength),
		search.WithLogger(l),
		search.OnResult(sh.console.suggestions),
	)
	return sh
}

func (sh *shell) close() {
	sh.session.Close()
}

// handle processes one input line and reports whether the shell should exit.
func (sh *shell) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == ":quit":
		return true
	case trimmed == ":help":
		sh.console.printf("%s", usage)
	case strings.HasPrefix(trimmed, ":open"):
		sh.open(ctx, strings.TrimSpace(strings.TrimPrefix(trimmed, ":open")))
	case strings.HasPrefix(trimmed, ":style"):
		arg := strings.TrimSpace(strings.TrimPrefix(trimmed, ":style"))
		style, ok := display.ParseDateStyle(arg)
		if !ok {
			sh.console.printf("! unknown style %q\n", arg)
			return false
		}
		sh.style = style
		sh.console.printf("date style: %s\n", style)
	default:
		sh.session.Update(line)
	}

	return false
}

func (sh *shell) open(ctx context.Context, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		sh.console.printf("! usage: :open N\n")
		return
	}

	visible := sh.console.visible(sh.session.Latest().Suggestions)
	if n < 1 || n > len(visible) {
		sh.console.printf("! no suggestion %d\n", n)
		return
	}

	city := visible[n-1]
	report, err := sh.service.Forecast(ctx, city.Name)
	if err != nil {
		var providerErr *repositories.ProviderError
		if errors.As(err, &providerErr) {
			sh.console.printf("! %s\n", providerErr.Message)
			return
		}
		sh.console.printf("! forecast for %s failed: %v\n", city.Name, err)
		return
	}

	sh.console.forecast(weather.ForecastView(report, sh.style))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	// stdout belongs to the UI; logs go to stderr and stay quiet by default.
	l := observe.NewLogger(observe.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   "warn",
		Format:  "console",
		Writers: []io.Writer{os.Stderr},
	})
	defer func() { _ = l.Stop() }()

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot create weather repository:", err)
		os.Exit(1)
	}

	sh := newShell(weather.NewService(repo, l), cnf, os.Stdout, l)
	defer sh.close()

	sh.console.printf("%s", usage)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok || sh.handle(ctx, line) {
				return
			}
		}
	}
}
