package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "dv").
		WithSynopsis("dv [opts] command [opts]").
		WithDescription("dv is a tool for inspecting and querying structured values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dvMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			FlattenCommand(cfg),
			SelectCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [opts] [files]").
		WithDescription("pretty-print documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dvDump(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path, null when absent").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff a b").
		WithDescription("show the structural difference between two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f", "fl").
		WithSynopsis("flatten [files]").
		WithDescription("list documents as path and leaf value pairs").
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select <expression> [files]").
		WithDescription(selectDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dvSelect(cfg, cc, args)
		})
}

const selectDescription = `select filters the flattened entries of documents with an expression.

The expression runs once per entry and sees

  path   the textual path of the entry, e.g. "spec.containers[0].name"
  key    the last key of the path, an int for list elements
  value  the leaf value
  kind   the kind name: null, bool, int, float, string, ...

plus get(path) and exists(path), which look up the whole document.
Entries with a truthy result are kept.

Examples

  dv select 'kind == "int" && value > 3' config.yaml
  dv select 'key == "image"' deploy.yaml
  dv select 'exists("spec.replicas") && path startsWith "spec."' deploy.yaml`
