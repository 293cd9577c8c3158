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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout); a .txt, .yaml or .json suffix sets the format unless -O is given",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: table/t, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "stoik").
		WithSynopsis("stoik [opts] command [opts]").
		WithDescription("stoik reads chemical formulas and checks whether equations are balanced.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stoikMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			ParseCommand(cfg),
			TokensCommand(cfg),
			CompareCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check [-a] [-t] [-filter expr] [-f file] [equation]").
		WithDescription("check whether an equation such as `2H2 + O2 -> 2H2O` is balanced").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("parse").
		WithAliases("p", "pa").
		WithSynopsis("parse [-tree] formulas...").
		WithDescription("count the atoms of formulas").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseFormulas(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens formulas...").
		WithDescription("show the tokens of formulas").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compare, "compare").
		WithAliases("cmp").
		WithSynopsis("compare a b").
		WithDescription("compare the composition of two formulas").
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
}
