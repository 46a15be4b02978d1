package main

import (
	"fmt"

	dyn "github.com/signadot/go-dyn"

	"github.com/scott-cotton/cli"
)

func dvSelect(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires one argument, an expression", cli.ErrUsage)
	}
	expression := args[0]
	args = args[1:]
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
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		entries, err := dyn.Select(doc, expression)
		if err != nil {
			return err
		}
		if cfg.Paths {
			for _, pv := range entries {
				if _, err := fmt.Fprintln(cc.Out, pv.Path); err != nil {
					return err
				}
			}
			continue
		}
		if err := renderEntries(cfg.MainConfig, cc.Out, entries); err != nil {
			return err
		}
	}
	return nil
}
