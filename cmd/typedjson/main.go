// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command typedjson inspects JSON files as typed structural values.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/z5labs/typedjson"
	"github.com/z5labs/typedjson/jsonvalue"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	err := newCmd().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "typedjson",
		Short:        "Inspect JSON files as typed structural values",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().Bool("blocking", false, "load synchronously instead of awaiting a deferred result")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "emit load diagnostics to stderr")

	cmd.AddCommand(
		newPrintCmd(),
		newKeysCmd(),
	)
	return cmd
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Load a JSON file and pretty print its normalized value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadFile(cmd, args[0])
			if err != nil {
				return err
			}

			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file>",
		Short: "Load a JSON file and list the top level object keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadFile(cmd, args[0])
			if err != nil {
				return err
			}

			view := jsonvalue.Wrap(v)
			if view.Kind() != jsonvalue.KindObject {
				return fmt.Errorf("top level value is of kind %s, not an object", view.Kind())
			}
			for _, k := range view.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func loadFile(cmd *cobra.Command, path string) (any, error) {
	blocking, err := cmd.Flags().GetBool("blocking")
	if err != nil {
		return nil, err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	opts := []typedjson.Option{
		typedjson.WithUnmarshalFunc(func(b []byte, v any) error {
			tree, err := jsonvalue.Unmarshal(b)
			if err != nil {
				return err
			}
			*(v.(*any)) = tree
			return nil
		}),
	}
	if verbose {
		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, typedjson.WithLogger(log))
	}

	ctx := cmd.Context()
	if blocking {
		return typedjson.LoadSync[any](ctx, path, opts...)
	}
	return typedjson.Load[any](ctx, path, opts...).Await(ctx)
}
