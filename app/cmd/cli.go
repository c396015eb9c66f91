package cmd

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/vengerka/cakemaster-api/app/configs"
	"github.com/vengerka/cakemaster-api/app/db/seeders"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models/migrations"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed size options, banner settings and starter categories",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:      "hash-password",
				Usage:     "Hash an admin password for ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					password := c.Args().First()
					if password == "" {
						return cli.Exit("usage: hash-password <password>", 1)
					}
					hash := helpers.HashPassword(password)
					if hash == "" {
						return cli.Exit("failed to hash password", 1)
					}
					log.Printf("ADMIN_PASSWORD_HASH=%s", hash)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
