// Command cfn-local invokes the 'AwsCommunity::S3::Object' lifecycle handlers in-process, following the same
// callback protocol the service uses, so changes can be exercised against real (or local stand-in) S3 without
// registering the type.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/awscommunity-s3-object/resource"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cfn-local",
		Short:        "Invoke the AwsCommunity::S3::Object handlers locally",
		SilenceUsage: true,
	}

	cmd.AddCommand(newInvokeCommand(), newSchemaCommand())

	return cmd
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the resource provider schema",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), string(resource.Schema()))
		},
	}
}
