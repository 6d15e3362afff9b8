package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/asyncdemo/async"
	"github.com/asyncdemo/async/fetch"
	"github.com/asyncdemo/async/internal/config"
	"github.com/asyncdemo/async/internal/demo"
	"github.com/asyncdemo/async/internal/logger"
)

var scenarioNames = []string{"callback", "promise", "await", "message", "user", "missing", "scroll"}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logrus.WithError(err).Fatal("asyncdemo failed")
	}
}

// run parses args, runs the selected scenarios and prints their output to
// stdout. Deferred cleanups have run by the time it returns.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("asyncdemo", flag.ContinueOnError)
	envPath := fs.String("env", ".env", "path to an optional .env file")
	only := fs.String("scenario", "", "run a single scenario (callback, promise, await, message, user, missing, scroll)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *only != "" && !slices.Contains(scenarioNames, *only) {
		return fmt.Errorf("unknown scenario %q", *only)
	}

	cfg, err := config.Load(*envPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	closer, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup // For keeping track of executor runs.
	defer wg.Wait()

	var executor async.Executor

	executor.Autorun(func() { wg.Go(executor.Run) })

	console := demo.NewConsole(stdout)

	callbackGetter := fetch.NewDataGetter(&executor, cfg.CallbackDelay)
	getter := fetch.NewDataGetter(&executor, cfg.GetDataDelay)
	messages := fetch.NewMessageFetcher(&executor, cfg.MessageDelay)
	users := fetch.NewUserFetcher(&executor, fetch.UserOptions{
		Delay:      cfg.FetchDelay,
		AcceptedID: cfg.AcceptedID,
	})

	scenarios := map[string]func() error{
		"callback": func() error { return demo.CallbackScenario(ctx, &executor, console, callbackGetter, 1) },
		"promise":  func() error { return demo.PromiseScenario(ctx, &executor, console, getter, 1) },
		"await":    func() error { return demo.AwaitScenario(ctx, &executor, console, getter, 1) },
		"message":  func() error { return demo.MessageScenario(ctx, &executor, console, messages) },
		"user":     func() error { return demo.UserScenario(ctx, &executor, console, users, cfg.AcceptedID) },
		"missing":  func() error { return demo.UserScenario(ctx, &executor, console, users, cfg.AcceptedID+1) },
		"scroll": func() error {
			return demo.ScrollScenario(ctx, &executor, console, cfg.ScrollDebounce, 5, cfg.ScrollDebounce/4)
		},
	}

	for _, name := range scenarioNames {
		if *only != "" && *only != name {
			continue
		}

		logrus.WithField("scenario", name).Info("Running scenario")

		if err := scenarios[name](); err != nil {
			return err
		}
	}

	return nil
}
