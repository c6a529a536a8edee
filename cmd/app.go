package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/jessevdk/go-flags"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.FromEnv()

	// инициализировать параметры запуска - режим и прочее:
	appParam, err := parser.InitAppMode(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, fe.Message)
			return 0
		}
		return fail(err)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeCLI:
		err = appmode.RunCLI(ctx, os.Stdout, appParam, log)
	case model.ModeServer:
		err = appmode.RunServer(ctx, appParam, log)
	default:
		err = fmt.Errorf("unknown mode %q specified", appParam.Mode)
	}
	if err != nil {
		return fail(err)
	}

	return 0
}

// fail prints err and returns the exit status: 2 for usage errors, 1 for everything else
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
	if errors.Is(err, parser.ErrUsage) {
		return 2
	}
	return 1
}
