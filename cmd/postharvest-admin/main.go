package main

import (
	"context"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/spf13/cobra"
)

const appName string = "postharvest-admin"

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "text")

	err := newRootCommand(appVersion).ExecuteContext(ctx)
	cleanup()

	if err != nil {
		log.Error("command failed", "err", err.Error())
		os.Exit(1)
	}
}

func newRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Administrative tasks for the postharvest reference database",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSchemaCommand())
	root.AddCommand(newUsersCommand())
	root.AddCommand(newSeedCommand())

	return root
}
