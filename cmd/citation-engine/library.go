// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/cite"
	"github.com/pdiddy/citation-engine/internal/library"
	"github.com/pdiddy/citation-engine/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the saved-citation library",
	Long: `Library manages a local SQLite store of saved citations. Citations
enter the library through "format --save" and "resolve --save"; the
subcommands list, show, remove, and export them.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved citations",
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	style, _ := cmd.Flags().GetString("style")
	sourceType, _ := cmd.Flags().GetString("type")
	author, _ := cmd.Flags().GetString("author")

	records, err := store.List(context.Background(), library.Filter{
		Style:      types.CitationStyle(style),
		SourceType: types.CitationSourceType(sourceType),
		Author:     author,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No saved citations.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-8s  %-8s  %-40s  %s\n",
		"ID", "Style", "Type", "Title", "Added")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range records {
		title := r.Input.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-30s  %-8s  %-8s  %-40s  %s\n",
			r.ID, r.Input.Style, r.Input.SourceType, title,
			r.AddedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(os.Stdout, "\n%d citations\n", len(records))
	return nil
}

// --- show subcommand ---

var libraryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one saved citation, formatted",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	in := rec.Input
	if styleFlag, _ := cmd.Flags().GetString("style"); styleFlag != "" {
		in.Style = types.CitationStyle(styleFlag)
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

// --- remove subcommand ---

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a saved citation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.NewStore(libraryConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved citations as CSL-YAML",
	Long: `Export writes the library (or a filtered subset) as a CSL-YAML list
consumable by Pandoc and reference managers. Output goes to stdout unless
--output names a file.`,
	RunE: runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	style, _ := cmd.Flags().GetString("style")
	sourceType, _ := cmd.Flags().GetString("type")
	author, _ := cmd.Flags().GetString("author")

	records, err := store.List(context.Background(), library.Filter{
		Style:      types.CitationStyle(style),
		SourceType: types.CitationSourceType(sourceType),
		Author:     author,
	})
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		return library.ExportCSL(os.Stdout, records)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()
	if err := library.ExportCSL(f, records); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d citations to %s\n", len(records), outPath)
	return nil
}

func init() {
	libraryCmd.PersistentFlags().String("library-dir", "", "library directory (default: ./library)")
	libraryCmd.PersistentFlags().Int("max-results", 0, "maximum list results (default 50)")

	libraryListCmd.Flags().String("style", "", "filter by citation style")
	libraryListCmd.Flags().String("type", "", "filter by source type")
	libraryListCmd.Flags().String("author", "", "filter by author name substring")
	libraryListCmd.Flags().Bool("json", false, "output records as JSON")

	libraryShowCmd.Flags().String("style", "", "format in this style instead of the saved one")

	libraryExportCmd.Flags().String("style", "", "filter by citation style")
	libraryExportCmd.Flags().String("type", "", "filter by source type")
	libraryExportCmd.Flags().String("author", "", "filter by author name substring")
	libraryExportCmd.Flags().String("output", "", "write to this file instead of stdout")

	libraryCmd.AddCommand(libraryListCmd, libraryShowCmd, libraryRemoveCmd, libraryExportCmd)
	rootCmd.AddCommand(libraryCmd)
}
