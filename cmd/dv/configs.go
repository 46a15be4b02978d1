package main

import (
	"fmt"
	"io"
	"os"

	dyn "github.com/signadot/go-dyn"
	"github.com/signadot/go-dyn/dump"
	"github.com/signadot/go-dyn/goval"
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='write results as json'"`
	Y bool `cli:"name=y aliases=yaml desc='write results as yaml'"`

	Compact bool `cli:"name=c desc='dump each document on one line'"`
	Color   bool `cli:"name=color desc='dump with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// decode reads one document. The decoder takes yaml and its json
// subset alike, so there is no input format switch.
func (cfg *MainConfig) decode(data []byte) (*val.Value, error) {
	return goval.UnmarshalYAML(data)
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.Option {
	var res []dump.Option
	if cfg.Compact {
		res = append(res, dump.Compact())
	}
	if cfg.colorize(w) {
		res = append(res, dump.WithColors(dump.NewColors()))
	}
	return res
}

// colorize reports whether output to w should be colored: yes on
// -color, no when -color was given false, otherwise yes on a
// terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// render writes v in the selected output format, dump format unless
// -j or -y asks for a marshalling.
func (cfg *MainConfig) render(w io.Writer, v *val.Value, extra ...dump.Option) error {
	switch {
	case cfg.J:
		d, err := goval.MarshalJSON(v)
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case cfg.Y:
		d, err := goval.MarshalYAML(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	opts := append(cfg.dumpOpts(w), extra...)
	if err := dump.Dump(v, w, opts...); err != nil {
		return err
	}
	if cfg.Compact {
		_, err := w.Write([]byte("\n"))
		return err
	}
	return nil
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}

type DumpConfig struct {
	*MainConfig
	Depth  int    `cli:"name=depth desc='dump at most this many levels'"`
	Indent string `cli:"name=indent desc='indent unit (default two spaces)'"`

	Dump *cli.Command
}

func (cfg *DumpConfig) dumpOpts() []dump.Option {
	var res []dump.Option
	if cfg.Depth > 0 {
		res = append(res, dump.Depth(cfg.Depth))
	}
	if cfg.Indent != "" {
		res = append(res, dump.Indent(cfg.Indent))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type FlattenConfig struct {
	*MainConfig

	Flatten *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='print matching paths only'"`

	Select *cli.Command
}

// renderEntries writes flattened entries, one "path = value" line in
// dump format, or a single path-keyed document under -j/-y.
func renderEntries(cfg *MainConfig, w io.Writer, entries []dyn.PathValue) error {
	if cfg.J || cfg.Y {
		byPath := val.NewStruct()
		c, _ := val.AsContainer(byPath)
		for _, pv := range entries {
			c.Set(keypath.StringKey(pv.Path.String()), pv.Value)
		}
		return cfg.render(w, byPath)
	}
	for _, pv := range entries {
		if _, err := fmt.Fprintf(w, "%s = %s\n", pv.Path, dump.String(pv.Value, dump.Compact())); err != nil {
			return err
		}
	}
	return nil
}
