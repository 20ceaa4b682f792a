package main

import (
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/diwise/postharvest/internal/pkg/application/seed"
	"github.com/diwise/postharvest/pkg/client"
)

const (
	fileFlag = "file"
	urlFlag  = "url"
)

var seedFlags = map[string]cobraflags.Flag{
	fileFlag: &cobraflags.StringFlag{
		Name:  fileFlag,
		Value: "dataset.yaml",
		Usage: "Yaml dataset to import",
	},
	urlFlag: &cobraflags.StringFlag{
		Name:  urlFlag,
		Value: "http://localhost:8080",
		Usage: "Base url of the postharvest api",
	},
	usernameFlag: &cobraflags.StringFlag{
		Name:  usernameFlag,
		Usage: "Administrator to import as (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Usage: "Password of the administrator (required)",
	},
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a yaml dataset through the api",
		Long: `Import commodities with their handling data, references and studies from a
yaml dataset. The import stops at the first failure and does not undo what was
already created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			f, err := os.Open(seedFlags[fileFlag].GetString())
			if err != nil {
				return fmt.Errorf("failed to open dataset: %w", err)
			}
			defer f.Close()

			ds, err := seed.Load(f)
			if err != nil {
				return err
			}

			c := client.NewPostharvestClient(seedFlags[urlFlag].GetString())

			_, err = c.Login(ctx, seedFlags[usernameFlag].GetString(), seedFlags[passwordFlag].GetString())
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}

			summary, err := seed.Import(ctx, ds, c)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d commodities, %d handling entries, %d references, %d studies and %d links\n",
				summary.Commodities, summary.Handling, summary.References, summary.Studies, summary.Links)

			return nil
		},
	}

	cobraflags.RegisterMap(cmd, seedFlags)

	return cmd
}
