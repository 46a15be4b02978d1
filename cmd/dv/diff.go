package main

import (
	"fmt"
	"io"

	dyn "github.com/signadot/go-dyn"
	"github.com/signadot/go-dyn/dump"
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"

	"github.com/scott-cotton/cli"
	"github.com/fatih/color"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	ds := dyn.Diff(a, b)
	if len(ds) == 0 {
		return nil
	}
	if cfg.J || cfg.Y {
		if err := cfg.render(cc.Out, deltasValue(ds)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if err := writeDeltas(cfg.MainConfig, cc.Out, ds); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDeltas(cfg *MainConfig, w io.Writer, ds []dyn.Delta) error {
	paint := func(s string, _ ...any) string { return s }
	add, del, rep := paint, paint, paint
	if cfg.colorize(w) {
		add = color.GreenString
		del = color.RedString
		rep = color.YellowString
	}
	for _, d := range ds {
		path := d.Path.String()
		if d.Path.IsEmpty() {
			path = "."
		}
		var line string
		switch {
		case d.Old == nil:
			line = add("+ %s: %s", path, dump.String(d.New, dump.Compact()))
		case d.New == nil:
			line = del("- %s: %s", path, dump.String(d.Old, dump.Compact()))
		default:
			line = rep("~ %s: %s -> %s", path,
				dump.String(d.Old, dump.Compact()),
				dump.String(d.New, dump.Compact()))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// deltasValue shapes a diff as a list of structs for -j and -y
// output.
func deltasValue(ds []dyn.Delta) *val.Value {
	res := val.NewList()
	c, _ := val.AsContainer(res)
	for i, d := range ds {
		e := val.NewStruct()
		ec, _ := val.AsContainer(e)
		ec.Set(keypath.StringKey("path"), val.FromString(d.Path.String()))
		if d.Old != nil {
			ec.Set(keypath.StringKey("old"), d.Old)
		}
		if d.New != nil {
			ec.Set(keypath.StringKey("new"), d.New)
		}
		c.Set(keypath.IntKey(i), e)
	}
	return res
}
