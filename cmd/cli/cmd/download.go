package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/angelospk/opensubtitles-xmlrpc/internal/constants"
	"github.com/spf13/cobra"
)

var downloadOutDir string

var downloadCmd = &cobra.Command{
	Use:   "download <subtitle-file-id>...",
	Short: "Download subtitle files by IDSubtitleFile",
	Long: fmt.Sprintf(`Downloads up to %d subtitle files per call and writes each one to
<out>/<id>.srt, named by the id the service returned it under.`, constants.MaxDownloadIDs),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range args {
			if err := validateFileID(id); err != nil {
				return err
			}
		}

		client, err := newSessionClient(true)
		if err != nil {
			return err
		}
		defer client.Close()

		files, err := client.DownloadSubtitleFiles(args...)
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}

		requested := make(map[string]bool, len(args))
		for _, id := range args {
			requested[id] = true
		}

		if err := os.MkdirAll(downloadOutDir, 0750); err != nil {
			return fmt.Errorf("could not create output directory %s: %w", downloadOutDir, err)
		}
		written := make(map[string]bool, len(files))
		for i, f := range files {
			id := f.ID
			if id == "" {
				// Without an id only a complete response can be matched by position.
				if len(files) != len(args) {
					return fmt.Errorf("subtitle %d has no id and the service returned %d of %d files", i+1, len(files), len(args))
				}
				id = args[i]
			}
			if !requested[id] {
				return fmt.Errorf("service returned subtitle %q which was not requested", id)
			}
			path := filepath.Join(downloadOutDir, id+".srt")
			if err := os.WriteFile(path, f.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			written[id] = true
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", path, len(f.Content))
		}

		var missing []string
		for _, id := range args {
			if !written[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("service returned no content for %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

// validateFileID rejects ids that cannot be used as a plain file name.
func validateFileID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return fmt.Errorf("invalid subtitle file id %q", id)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVarP(&downloadOutDir, "out", "o", ".", "Directory to write the subtitle files to")
}
