package main

import (
	"fmt"

	"github.com/clausewitz-format/go-clausewitz/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <a> <b>", cli.ErrUsage)
	}
	from, err := parseFile(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := parseFile(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	deltas := libdiff.Diff(from, to)
	useColor := len(cfg.encOpts(cc.Out)) > 0
	for _, d := range deltas {
		line := d.String()
		if useColor {
			switch d.Op {
			case libdiff.OpAdd:
				line = color.GreenString(line)
			case libdiff.OpRemove:
				line = color.RedString(line)
			default:
				line = color.YellowString(line)
			}
		}
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}
