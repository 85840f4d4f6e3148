// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/cite"
	"github.com/pdiddy/citation-engine/internal/library"
	"github.com/pdiddy/citation-engine/internal/resolve"
	"github.com/pdiddy/citation-engine/pkg/types"
)

const (
	defaultResolveTimeout = 30 * time.Second
	defaultUserAgent      = "citation-engine/0.1"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <doi>",
	Short: "Fetch citation metadata for a DOI and format it",
	Long: `Resolve queries doi.org for the DOI's bibliographic metadata and
renders it as a citation in the requested style. The DOI may be bare
("10.1000/x"), labeled ("doi:10.1000/x"), or a doi.org URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("style", "", "citation style for the output")
	resolveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	resolveCmd.Flags().Int("max-retries", 0, "retries on rate-limited responses (default 3)")
	resolveCmd.Flags().Bool("save", false, "save the resolved metadata to the citation library")
	resolveCmd.Flags().String("library-dir", "", "library directory (default: ./library)")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultResolveTimeout
	}
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	cfg := types.ResolveConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxRetries: maxRetries,
	}

	in, err := resolve.Resolve(context.Background(), cfg, args[0])
	if err != nil {
		return err
	}

	styleFlag, _ := cmd.Flags().GetString("style")
	in.Style = defaultStyle(styleFlag)

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := library.NewStore(libraryConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Save(context.Background(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved as %s\n", id)
	}

	opts, err := formatOptions(cmd)
	if err != nil {
		return err
	}
	result := cite.FormatCitation(in, opts)

	fmt.Println(result.Citation)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}
