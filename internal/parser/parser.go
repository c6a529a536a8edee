// Package parser puts command-line arguments into AppInit structure and validates it for any issues
package parser

import (
	"errors"
	"fmt"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/jessevdk/go-flags"
)

// ErrUsage marks invalid or incomplete command-line arguments
var ErrUsage = errors.New("usage error")

const usage = "[OPTIONS] pattern file"

// options is interpreted by github.com/jessevdk/go-flags
type options struct {
	IgnoreCase bool   `short:"i" long:"ignore-case" description:"Ignore case during search"`
	LineNumber bool   `short:"l" long:"line-number" description:"Show line numbers"`
	Color      string `long:"color" choice:"auto" choice:"always" choice:"never" default:"auto" description:"Highlight matches and line numbers"`
	Serve      string `long:"serve" value-name:"ADDR" description:"Serve POST /search on ADDR instead of searching a file"`

	Args struct {
		Pattern *string `positional-arg-name:"pattern" description:"The pattern to search for"`
		File    string  `positional-arg-name:"file" description:"The file to search in"`
	} `positional-args:"yes"`
}

// InitAppMode parses args (without the program name). Help requests are returned as *flags.Error with Type flags.ErrHelp.
func InitAppMode(args []string) (*model.AppInit, error) {
	var opts options
	flagParser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	flagParser.Name = "minigrep"
	flagParser.Usage = usage

	// парсим аргументы
	rest, err := flagParser.ParseArgs(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q, only a single file is supported", ErrUsage, rest)
	}

	appInit := model.AppInit{
		Color: model.ColorMode(opts.Color),
		SearchParam: model.SearchParam{
			IgnoreCase: opts.IgnoreCase,
			LineNumber: opts.LineNumber,
		},
	}

	// режим сервера: паттерн и файл приходят в каждом запросе
	if opts.Serve != "" {
		if opts.Args.Pattern != nil || opts.Args.File != "" {
			return nil, fmt.Errorf("%w: pattern and file are taken from requests in server mode, remove them or drop --serve", ErrUsage)
		}
		appInit.Mode = model.ModeServer
		appInit.Address = opts.Serve
		return &appInit, nil
	}

	// Разбираемся с паттерном и входом
	switch {
	case opts.Args.Pattern == nil:
		return nil, fmt.Errorf("%w: pattern not specified\nUsage: minigrep %s", ErrUsage, usage)
	case opts.Args.File == "":
		return nil, fmt.Errorf("%w: file not specified\nUsage: minigrep %s", ErrUsage, usage)
	}

	appInit.Mode = model.ModeCLI
	appInit.SearchParam.Pattern = *opts.Args.Pattern
	appInit.SearchParam.Source = opts.Args.File

	return &appInit, nil
}
