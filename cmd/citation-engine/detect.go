// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/cite"
)

var detectCmd = &cobra.Command{
	Use:   "detect [citation text]",
	Short: "Detect the citation style of freeform text",
	Long: `Detect scores the text against the known citation styles and reports
the best match with a confidence between 0 and 1. Text with no clear style
evidence reports "unknown".`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().Bool("json", false, "output detection result as JSON")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text, err := citationText(args)
	if err != nil {
		return err
	}

	det := cite.DetectStyle(text)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(det)
	}

	fmt.Printf("%s (confidence %.2f)\n", det.Style, det.Confidence)
	return nil
}
