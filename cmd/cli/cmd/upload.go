package cmd

import (
	"fmt"

	coreErrors "github.com/angelospk/opensubtitles-xmlrpc/pkg/core/errors"
	"github.com/angelospk/opensubtitles-xmlrpc/pkg/core/opensubtitles"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var uploadIntent opensubtitles.UploadIntent

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <subtitle-file>",
	Short: "Upload a subtitle to OpenSubtitles",
	Long: `Checks with TryUploadSubtitles whether the subtitle is already known and,
if not, uploads it. Without --video both --imdbid and --lang are required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intent := uploadIntent
		intent.SubtitleFilePath = args[0]

		tryParams, err := opensubtitles.PrepareTryUploadParams(intent)
		if err != nil {
			return fmt.Errorf("invalid upload: %w", err)
		}

		client, err := newSessionClient(true)
		if err != nil {
			return err
		}
		defer client.Close()

		log := logger.WithFields(logrus.Fields{"file": intent.SubtitleFilePath, "imdbid": intent.IMDBID})
		log.Info("Checking whether the subtitle is already in the database...")
		inDB, err := client.TryUploadSubtitles(tryParams)
		if err != nil {
			return fmt.Errorf("try-upload failed: %w", err)
		}
		if inDB {
			return coreErrors.ErrUploadDuplicate
		}

		params, err := opensubtitles.PrepareUploadParams(intent, tryParams)
		if err != nil {
			return fmt.Errorf("invalid upload: %w", err)
		}
		url, err := client.UploadSubtitles(params)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}
		log.WithField("url", url).Info("Subtitle uploaded")
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded: %s\n", url)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)

	f := uploadCmd.Flags()
	f.StringVar(&uploadIntent.VideoFilePath, "video", "", "Matching video file, used for the movie hash")
	f.StringVar(&uploadIntent.IMDBID, "imdbid", "", "IMDb ID (e.g., tt1234567)")
	f.StringVarP(&uploadIntent.LanguageID, "lang", "l", "", "Subtitle language, ISO 639-2 (e.g., eng)")
	f.StringVar(&uploadIntent.ReleaseName, "release", "", "Movie release name")
	f.StringVar(&uploadIntent.MovieAka, "aka", "", "Alternative movie title")
	f.Float64Var(&uploadIntent.FPS, "fps", 0, "Video frame rate")
	f.StringVar(&uploadIntent.Comment, "comment", "", "Author comment")
	f.StringVar(&uploadIntent.Translator, "translator", "", "Translator name")
	f.BoolVar(&uploadIntent.HearingImpaired, "hi", false, "Subtitle is for the hearing impaired")
	f.BoolVar(&uploadIntent.HighDefinition, "hd", false, "Subtitle is for an HD release")
	f.BoolVar(&uploadIntent.AutomaticTranslation, "machine-translated", false, "Subtitle was machine translated")
	f.BoolVar(&uploadIntent.ForeignPartsOnly, "foreign-only", false, "Subtitle covers foreign parts only")
}
