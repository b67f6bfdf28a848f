package main

import (
	"github.com/clausewitz-format/go-clausewitz/encode"
	"github.com/clausewitz-format/go-clausewitz/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return parseFiles(cfg.MainConfig, args, func(_ string, node *ir.Node) error {
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
