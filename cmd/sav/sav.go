package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/clausewitz-format/go-clausewitz/ir"
	"github.com/clausewitz-format/go-clausewitz/parse"

	"github.com/scott-cotton/cli"
)

func savMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// parseFiles parses each named file, "-" meaning stdin, and calls f
// with the result. An empty list means stdin.
func parseFiles(cfg *MainConfig, files []string, f func(file string, node *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		node, err := parseFile(cfg, file)
		if err != nil {
			return err
		}
		if err := f(file, node); err != nil {
			return err
		}
	}
	return nil
}

func parseFile(cfg *MainConfig, file string) (*ir.Node, error) {
	var (
		r   io.Reader = os.Stdin
		err error
	)
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return node, nil
}
