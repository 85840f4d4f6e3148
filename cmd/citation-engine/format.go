// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/cite"
	"github.com/pdiddy/citation-engine/internal/library"
	"github.com/pdiddy/citation-engine/pkg/types"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format structured bibliographic data as a citation",
	Long: `Format builds a citation string from field flags in the requested
style. Missing recommended fields produce warnings on stderr; the citation
is still rendered from whatever fields are present.

Authors are given as "Given Family" or "Family, Given", separated by
semicolons or repeated --author flags.`,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().String("style", "", "citation style: apa7, mla9, chicago, ieee, gbt7714")
	formatCmd.Flags().String("type", "website", "source type: website, journal, book")
	formatCmd.Flags().StringArray("author", nil, "author name (repeatable)")
	formatCmd.Flags().String("title", "", "title of the work")
	formatCmd.Flags().String("container", "", "journal or site name")
	formatCmd.Flags().String("publisher", "", "publisher (books)")
	formatCmd.Flags().String("published", "", "publication date (YYYY[-MM[-DD]])")
	formatCmd.Flags().String("accessed", "", "access date (YYYY[-MM[-DD]])")
	formatCmd.Flags().String("volume", "", "volume number")
	formatCmd.Flags().String("issue", "", "issue number")
	formatCmd.Flags().String("pages", "", "page range")
	formatCmd.Flags().String("url", "", "URL of the work")
	formatCmd.Flags().String("doi", "", "DOI of the work")
	formatCmd.Flags().Bool("json", false, "output citation and warnings as JSON")
	formatCmd.Flags().Bool("save", false, "save the input to the citation library")
	formatCmd.Flags().String("library-dir", "", "library directory (default: ./library)")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	in, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}

	opts, err := formatOptions(cmd)
	if err != nil {
		return err
	}

	result := cite.FormatCitation(in, opts)

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

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(result.Citation)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}

// inputFromFlags assembles the citation input from the format command's
// field flags.
func inputFromFlags(cmd *cobra.Command) (types.CitationInput, error) {
	styleFlag, _ := cmd.Flags().GetString("style")
	sourceType, _ := cmd.Flags().GetString("type")

	in := types.CitationInput{
		Style:      defaultStyle(styleFlag),
		SourceType: types.CitationSourceType(sourceType),
	}
	switch in.SourceType {
	case types.SourceWebsite, types.SourceJournal, types.SourceBook:
	default:
		return in, fmt.Errorf("unknown source type %q: use website, journal, or book", sourceType)
	}

	authors, _ := cmd.Flags().GetStringArray("author")
	for _, a := range authors {
		in.Authors = append(in.Authors, cite.ParseAuthors(a)...)
	}

	in.Title, _ = cmd.Flags().GetString("title")
	in.ContainerTitle, _ = cmd.Flags().GetString("container")
	in.Publisher, _ = cmd.Flags().GetString("publisher")
	in.PublishedDate, _ = cmd.Flags().GetString("published")
	in.AccessDate, _ = cmd.Flags().GetString("accessed")
	in.Volume, _ = cmd.Flags().GetString("volume")
	in.Issue, _ = cmd.Flags().GetString("issue")
	in.Pages, _ = cmd.Flags().GetString("pages")
	in.URL, _ = cmd.Flags().GetString("url")
	in.DOI, _ = cmd.Flags().GetString("doi")
	return in, nil
}
