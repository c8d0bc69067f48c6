package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/social/cmd/app/commands"
	"github.com/allisson/social/internal/app"
	"github.com/allisson/social/internal/config"
	authService "github.com/allisson/social/internal/auth/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-token-secret",
			Usage: "Generate a KMS encrypted secret for signing identity tokens",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kms-key-uri",
					Required: true,
					Usage:    "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
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

				return commands.RunCreateTokenSecret(
					ctx,
					authService.NewKMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("kms-key-uri"),
					cmd.String("format"),
				)
			},
		},
	}
}
