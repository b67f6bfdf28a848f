package main

import (
	"fmt"

	clausewitz "github.com/clausewitz-format/go-clausewitz"
	"github.com/clausewitz-format/go-clausewitz/encode"
	"github.com/clausewitz-format/go-clausewitz/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expected <dotted.path> [files]", cli.ErrUsage)
	}
	path := args[0]
	return parseFiles(cfg.MainConfig, args[1:], func(file string, node *ir.Node) error {
		tree, err := clausewitz.FromNode(node)
		if err != nil {
			return err
		}
		val, ok := tree.Lookup(path)
		if !ok {
			if cfg.Default != "" {
				fmt.Fprintln(cc.Out, cfg.Default)
				return nil
			}
			return fmt.Errorf("%w: %q in %s", ir.ErrNotFound, path, file)
		}
		return encode.Encode(val, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
