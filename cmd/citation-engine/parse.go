// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-engine/internal/cite"
	"github.com/pdiddy/citation-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [citation text]",
	Short: "Extract structured fields from freeform citation text",
	Long: `Parse detects the citation style of the given text (or reads it from
stdin) and extracts whatever bibliographic fields it can find. Extraction is
best-effort: fields that cannot be recovered are left empty.

Pass --style to skip detection and parse with a known style.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("style", "", "assume this style instead of detecting it")
	parseCmd.Flags().Bool("json", false, "output extracted fields as JSON instead of YAML")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := citationText(args)
	if err != nil {
		return err
	}

	styleFlag, _ := cmd.Flags().GetString("style")
	fields := cite.ParseCitation(text, types.CitationStyle(styleFlag))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}

	data, err := yaml.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshaling fields: %w", err)
	}
	os.Stdout.Write(data)
	return nil
}

// citationText joins the command arguments, or reads stdin when no
// arguments are given.
func citationText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("provide citation text as an argument or on stdin")
	}
	return text, nil
}
