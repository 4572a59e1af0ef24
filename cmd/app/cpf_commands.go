package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/validacpf/cmd/app/commands"
	"github.com/allisson/validacpf/internal/app"
	"github.com/allisson/validacpf/internal/config"
)

func getCPFCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "validate",
			Usage: "Validate a CPF, checking the debt registry when enabled",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "cpf",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "CPF to validate, with or without punctuation",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ValidationUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("cpf"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate",
			Usage: "Generate random valid CPFs for testing",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "Number of CPFs to generate",
				},
				&cli.BoolFlag{
					Name:  "formatted",
					Value: false,
					Usage: "Render as 000.000.000-00",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())

				return commands.RunGenerate(
					container.Generator(),
					container.Formatter(),
					commands.DefaultIO().Writer,
					int(cmd.Int("count")),
					cmd.Bool("formatted"),
				)
			},
		},
		{
			Name:  "format",
			Usage: "Print a valid CPF as 000.000.000-00",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "cpf",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "CPF to format",
				},
				&cli.BoolFlag{
					Name:  "mask",
					Value: false,
					Usage: "Hide the first six digits",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())

				return commands.RunFormat(
					container.Formatter(),
					commands.DefaultIO().Writer,
					cmd.String("cpf"),
					cmd.Bool("mask"),
				)
			},
		},
	}
}
