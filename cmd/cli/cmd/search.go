package cmd

import (
	"fmt"
	"strconv"
	"strings"

	ptn "github.com/razsteinmetz/go-ptn"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	searchIMDbID  string
	searchLangs   []string
	searchQuery   string
	searchRelease string
	searchSeason  int
	searchEpisode int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for subtitles on OpenSubtitles",
	Long: `Searches subtitles by IMDb ID, free text query or a release name.
A release name such as "Show.Name.S01E02.720p.WEB" is parsed into query,
season and episode filters.`,
	RunE: runSearch,
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchIMDbID, "imdbid", "", "IMDb ID (e.g., tt1234567)")
	searchCmd.Flags().StringSliceVarP(&searchLangs, "lang", "l", nil, "Subtitle languages, ISO 639-2 (e.g., eng,rus). Default eng")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search query (movie/show title)")
	searchCmd.Flags().StringVar(&searchRelease, "release", "", "Release or file name to parse into filters")
	searchCmd.Flags().IntVarP(&searchSeason, "season", "s", 0, "Season number")
	searchCmd.Flags().IntVarP(&searchEpisode, "episode", "e", 0, "Episode number")
}

// releaseFilters turns a release name into SearchSubtitles filters.
func releaseFilters(release string) (map[string]interface{}, error) {
	info, err := ptn.Parse(release)
	if err != nil {
		return nil, fmt.Errorf("failed to parse release name '%s': %w", release, err)
	}
	filters := map[string]interface{}{"tag": release}
	if info.Title != "" {
		filters["query"] = info.Title
	}
	if info.Season > 0 {
		filters["season"] = strconv.Itoa(info.Season)
	}
	if info.Episode > 0 {
		filters["episode"] = strconv.Itoa(info.Episode)
	}
	return filters, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchQuery == "" && searchIMDbID == "" && searchRelease == "" {
		return fmt.Errorf("at least one of --query, --imdbid, or --release must be provided")
	}

	extra := make(map[string]interface{})
	if searchRelease != "" {
		filters, err := releaseFilters(searchRelease)
		if err != nil {
			return err
		}
		for k, v := range filters {
			extra[k] = v
		}
	}
	// Explicit flags win over values parsed from the release name.
	if searchQuery != "" {
		extra["query"] = searchQuery
	}
	if searchSeason > 0 {
		extra["season"] = strconv.Itoa(searchSeason)
	}
	if searchEpisode > 0 {
		extra["episode"] = strconv.Itoa(searchEpisode)
	}

	var languages []string
	if len(searchLangs) > 0 {
		languages = searchLangs
	}
	imdbID := strings.TrimPrefix(searchIMDbID, "tt")

	client, err := newSessionClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.WithFields(logrus.Fields{
		"imdbid":    imdbID,
		"languages": languages,
		"filters":   extra,
	}).Info("Searching subtitles...")

	results, err := client.SearchSubtitles(imdbID, languages, extra)
	if err != nil {
		logger.WithError(err).Error("Subtitle search failed")
		return fmt.Errorf("subtitle search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No subtitles found matching the criteria.")
		return nil
	}

	fmt.Fprintf(out, "Found %d subtitles:\n", len(results))
	fmt.Fprintln(out, "--------------------------------------------------")
	for _, sub := range results {
		fmt.Fprintf(out, "File ID: %v\n", sub["IDSubtitleFile"])
		fmt.Fprintf(out, "  File Name: %v\n", sub["SubFileName"])
		fmt.Fprintf(out, "  Language: %v\n", sub["SubLanguageID"])
		fmt.Fprintf(out, "  Movie: %v (%v)\n", sub["MovieName"], sub["MovieYear"])
		fmt.Fprintf(out, "  Downloads: %v\n", sub["SubDownloadsCnt"])
		fmt.Fprintln(out, "--------------------------------------------------")
	}
	return nil
}
