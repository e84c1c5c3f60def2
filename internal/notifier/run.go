package notifier

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"smart-pos/internal/xpkg/config"
	xerrors "smart-pos/internal/xpkg/errors"
	"smart-pos/internal/xpkg/logger"
)

// Execute starts the notification subscriber.
func Execute(ctx context.Context, mylog logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet("notification-subscriber", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config/config.yaml", "path for config yaml")

	if err := fs.Parse(args); err != nil {
		mylog.Action("command_parse_failed").Error("Invalid command received", err)
		return xerrors.ErrParseCmd
	}
	if *showHelp {
		fs.Usage()
		return xerrors.ErrHelp
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		mylog.Action("config_load_failed").Error("Failed to load configuration", err)
		return err
	}

	sub := NewSubscriber(cfg, mylog)
	defer sub.Stop()

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- sub.Start(newCtx)
	}()

	select {
	case <-newCtx.Done():
		mylog.Action("shutdown_signal_received").Info("Shutdown signal received")
		return nil
	case err := <-runErrCh:
		if err != nil {
			mylog.Action("subscriber_failed").Error("Subscriber failed unexpectedly", err)
		}
		return err
	}
}
