package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/awscommunity-s3-object/awsconf"
	"github.com/aws-cloudformation/awscommunity-s3-object/cfn"
	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objcli"
	"github.com/aws-cloudformation/awscommunity-s3-object/resource"
)

// placeholderRegex matches the '{{Name}}' templates contract test inputs use to reference values exported by the
// prerequisite stack.
var placeholderRegex = regexp.MustCompile(`\{\{\s*([A-Za-z0-9]+)\s*\}\}`)

type invokeOptions struct {
	region       string
	endpoint     string
	maxRPS       float64
	previousPath string
	noReinvoke   bool
}

func newInvokeCommand() *cobra.Command {
	var opts invokeOptions

	cmd := &cobra.Command{
		Use:   "invoke <action> <properties.json>",
		Short: "Invoke a lifecycle handler with the given resource properties document",
		Long: "Invoke a lifecycle handler (CREATE, READ, UPDATE, DELETE or LIST) with the resource properties read " +
			"from the given document. '{{Name}}' placeholders in the document are resolved from the environment, " +
			"with a '.env' file loaded first when present. The handler is re-invoked while it reports IN_PROGRESS, " +
			"honoring the requested callback delay, and each progress event is printed as JSON.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoke(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.region, "region", defaultRegion(), "region the operation targets")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "",
		"custom S3 endpoint, path style addressing is used when set")
	cmd.Flags().Float64Var(&opts.maxRPS, "max-rps", 0, "cap on S3 requests per second, unlimited when zero")
	cmd.Flags().StringVar(&opts.previousPath, "previous", "",
		"document with the previous resource properties, update only")
	cmd.Flags().BoolVar(&opts.noReinvoke, "no-reinvoke", false,
		"print the first progress event and exit instead of following callbacks")

	return cmd
}

func runInvoke(cmd *cobra.Command, args []string, opts invokeOptions) error {
	action, err := parseAction(args[0])
	if err != nil {
		return err
	}

	if err := loadDotEnv(); err != nil {
		return err
	}

	properties, err := loadDocument(args[1])
	if err != nil {
		return err
	}

	var previous []byte

	if opts.previousPath != "" {
		if previous, err = loadDocument(opts.previousPath); err != nil {
			return err
		}
	}

	handlers := resource.NewHandlers(resource.HandlersOptions{
		NewClient: newClientFactory(opts),
		Logger:    slog.Default(),
	})

	event := cfn.Event{
		Action:       action,
		ResourceType: resource.TypeName,
		Region:       opts.region,
		BearerToken:  uuid.NewString(),
		RequestData: cfn.RequestData{
			LogicalResourceID:          "LocalInvoke",
			ResourceProperties:         properties,
			PreviousResourceProperties: previous,
		},
	}

	dispatcher := handlers.Resource()

	for {
		progress, err := dispatcher.HandleEvent(cmd.Context(), event)
		if err != nil {
			return err
		}

		encoded, err := cfn.EncodeProgress(progress)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

		switch {
		case progress.Status == cfn.StatusFailed:
			return fmt.Errorf("handler failed with error code '%s'", progress.ErrorCode)
		case progress.Status != cfn.StatusInProgress || opts.noReinvoke:
			return nil
		}

		// Honor the requested delay the way the service would before delivering the callback
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case <-time.After(time.Duration(progress.CallbackDelaySeconds) * time.Second):
		}

		event.CallbackContext = progress.CallbackContext
	}
}

// parseAction maps the command line action argument onto the envelope action, case-insensitively.
func parseAction(raw string) (cfn.Action, error) {
	action := cfn.Action(strings.ToUpper(raw))

	switch action {
	case cfn.ActionCreate, cfn.ActionRead, cfn.ActionUpdate, cfn.ActionDelete, cfn.ActionList:
		return action, nil
	}

	return "", fmt.Errorf("unknown action '%s'", raw)
}

// loadDotEnv populates the environment from a '.env' file, absence of the file is not an error.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load .env: %w", err)
}

// loadDocument reads a properties document and resolves any placeholders within it.
func loadDocument(path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return resolvePlaceholders(payload, os.LookupEnv)
}

// resolvePlaceholders replaces '{{Name}}' templates with the value returned by the given lookup, unresolvable
// placeholders are an error rather than being passed through to the handler.
func resolvePlaceholders(payload []byte, lookup func(string) (string, bool)) ([]byte, error) {
	var missing []string

	resolved := placeholderRegex.ReplaceAllFunc(payload, func(match []byte) []byte {
		name := string(placeholderRegex.FindSubmatch(match)[1])

		value, ok := lookup(name)
		if !ok {
			missing = append(missing, name)
			return match
		}

		return []byte(value)
	})

	if len(missing) != 0 {
		return nil, fmt.Errorf("unresolved placeholders: %s", strings.Join(missing, ", "))
	}

	return resolved, nil
}

// newClientFactory returns the storage client factory for local invocations, flags take the place of the
// configuration the service would normally supply.
func newClientFactory(opts invokeOptions) resource.ClientFactory {
	return func(ctx context.Context, request *cfn.Request) (objcli.Client, error) {
		return awsconf.NewObjectClient(ctx, awsconf.Options{
			Region:      request.Region,
			Credentials: request.Credentials,
			Endpoint:    opts.endpoint,
			MaxRPS:      opts.maxRPS,
		})
	}
}

// defaultRegion returns the region used when the flag is not given, deferring to the standard SDK variable.
func defaultRegion() string {
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}

	return "us-east-1"
}
