package main

import (
	dyn "github.com/signadot/go-dyn"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		doc, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := renderEntries(cfg.MainConfig, cc.Out, dyn.Flatten(doc)); err != nil {
			return err
		}
	}
	return nil
}
