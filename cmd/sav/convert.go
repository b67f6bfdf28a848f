package main

import (
	"encoding/json"
	"fmt"

	"github.com/clausewitz-format/go-clausewitz/encode"
	"github.com/clausewitz-format/go-clausewitz/format"
	"github.com/clausewitz-format/go-clausewitz/gomap"
	"github.com/clausewitz-format/go-clausewitz/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	ofmt := format.YAMLFormat
	if cfg.OutFormat != nil {
		ofmt = *cfg.OutFormat
	}
	return parseFiles(cfg.MainConfig, args, func(_ string, node *ir.Node) error {
		switch ofmt {
		case format.SaveFormat:
			return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
		case format.JSONFormat:
			d, err := json.MarshalIndent(gomap.ToGo(node), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cc.Out, string(d))
			return err
		case format.YAMLFormat:
			d, err := yaml.Marshal(gomap.ToGo(node))
			if err != nil {
				return err
			}
			_, err = cc.Out.Write(d)
			return err
		default:
			return fmt.Errorf("%w: %s", format.ErrBadFormat, ofmt)
		}
	})
}
