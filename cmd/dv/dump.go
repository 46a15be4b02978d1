package main

import (
	"github.com/scott-cotton/cli"
)

func dvDump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
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
		if err := dumpFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, file string) error {
	docs, err := readDocs(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := cfg.render(cc.Out, doc, cfg.dumpOpts()...); err != nil {
			return err
		}
	}
	return nil
}
