package main

import (
	"fmt"

	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := keypath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid path %q: %v", cli.ErrUsage, args[0], err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		doc, err := getDocFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := cfg.render(cc.Out, val.Get(doc, path)); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
