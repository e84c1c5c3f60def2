package pos

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"smart-pos/internal/pos/api/http"
	"smart-pos/internal/xpkg/config"
	xerrors "smart-pos/internal/xpkg/errors"
	"smart-pos/internal/xpkg/logger"
)

type params struct {
	configPath string
	port       int
	cfg        *config.Config
}

// Execute starts the POS API service.
func Execute(ctx context.Context, mylog logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	params, err := parseParams(args)
	if err != nil {
		mylog.Action("command_parse_failed").Error("Invalid command received", err)
		return err
	}
	if err = validateParams(params); err != nil {
		mylog.Action("command_validation_failed").Error("Invalid command received", err)
		return err
	}
	mylog.Action("command_validation_completed").Info("Successfully validated params")

	server := http.NewServer(newCtx, context.Background(), params.cfg, mylog)

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- server.Run()
	}()

	select {
	case <-newCtx.Done():
		mylog.Action("shutdown_signal_received").Info("Shutdown signal received")
		return server.Stop(context.Background())
	case err := <-runErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			mylog.Action("pos_api_failed").Error("Server failed unexpectedly", err)
			return err
		}
		mylog.Action("server_stopped").Info("Server exited normally")
		return nil
	}
}

func parseParams(args []string) (*params, error) {
	fs := flag.NewFlagSet("pos-api", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config/config.yaml", "path for config yaml")
	port := fs.Int("port", 0, "Port to run the POS API (overrides config)")

	if err := fs.Parse(args); err != nil {
		return nil, xerrors.ErrParseCmd
	}

	if *showHelp {
		fs.Usage()
		return nil, xerrors.ErrHelp
	}

	return &params{
		configPath: *configPath,
		port:       *port,
	}, nil
}

func validateParams(params *params) error {
	cfg, err := config.LoadConfig(params.configPath)
	if err != nil {
		return err
	}
	params.cfg = cfg

	if params.port != 0 {
		cfg.HTTP.Port = params.port
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port >= 65536 {
		return fmt.Errorf("port must be in [1: 65,535]: %d", cfg.HTTP.Port)
	}

	return nil
}
