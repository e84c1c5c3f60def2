package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"smart-pos/internal/migrator"
	"smart-pos/internal/notifier"
	"smart-pos/internal/pos"
	xerrors "smart-pos/internal/xpkg/errors"
	"smart-pos/internal/xpkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var mode string
	var serviceArgs []string

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if strings.HasPrefix(arg, "--mode=") {
			mode = strings.TrimPrefix(arg, "--mode=")
		} else if arg == "--mode" && i+1 < len(os.Args) {
			mode = os.Args[i+1]
			i++
		} else {
			serviceArgs = append(serviceArgs, arg)
		}
	}

	if mode == "" {
		fmt.Println(xerrors.ErrModeFlag)
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	mylog := logger.New(mode)

	var err error
	switch mode {
	case "pos-api":
		err = pos.Execute(ctx, mylog, serviceArgs)
	case "notification-subscriber":
		err = notifier.Execute(ctx, mylog, serviceArgs)
	case "migrate":
		err = migrator.Execute(ctx, mylog, serviceArgs)
	default:
		fmt.Printf("Invalid mode %q: %s\n", mode, xerrors.ErrUnknownService)
		printUsage()
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, xerrors.ErrHelp) {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: smart-pos --mode=<service-mode> [service-specific-flags]")
	fmt.Println("Available modes:")
	fmt.Println("  pos-api --config-path=config/config.yaml --port=3000")
	fmt.Println("  notification-subscriber --config-path=config/config.yaml")
	fmt.Println("  migrate --direction=up")
}
