package opensubtitles

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/angelospk/opensubtitles-xmlrpc/pkg/core/fileops"
)

// UploadIntent holds what the user provided for one subtitle upload.
type UploadIntent struct {
	SubtitleFilePath     string // Path to the subtitle file
	VideoFilePath        string // Optional path to the matching video file
	IMDBID               string // e.g., "tt1234567" or "1234567"
	LanguageID           string // e.g., "eng"
	ReleaseName          string
	MovieAka             string
	FPS                  float64
	Comment              string
	Translator           string
	HighDefinition       bool
	HearingImpaired      bool
	AutomaticTranslation bool
	ForeignPartsOnly     bool
}

// boolToXmlRpc converts a boolean to the "1" or "0" string expected by XML-RPC.
func boolToXmlRpc(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// PrepareTryUploadParams builds the TryUploadSubtitles argument:
//
//	array('cd1' => array('subhash', 'subfilename', 'moviehash', 'moviebytesize', 'moviefilename'))
//
// Without a video file both LanguageID and IMDBID are required.
func PrepareTryUploadParams(intent UploadIntent) (map[string]interface{}, error) {
	if intent.SubtitleFilePath == "" {
		return nil, errors.New("subtitle file path is required")
	}
	subHash, err := fileops.CalculateMD5Hash(intent.SubtitleFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate MD5 hash for subtitle: %w", err)
	}

	cd := map[string]interface{}{
		"subhash":     subHash,
		"subfilename": filepath.Base(intent.SubtitleFilePath),
	}

	if intent.VideoFilePath != "" {
		movieHash, err := fileops.CalculateOSDbHash(intent.VideoFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate OSDb hash for video: %w", err)
		}
		cd["moviehash"] = movieHash.Hash
		cd["moviebytesize"] = strconv.FormatInt(movieHash.Size, 10)
		cd["moviefilename"] = filepath.Base(intent.VideoFilePath)
	} else {
		if intent.LanguageID == "" {
			return nil, errors.New("language ID is required if no video file is provided")
		}
		if intent.IMDBID == "" {
			return nil, errors.New("IMDB ID is required if no video file is provided")
		}
	}
	if intent.FPS > 0 {
		cd["moviefps"] = strconv.FormatFloat(intent.FPS, 'f', 3, 64)
	}

	return map[string]interface{}{"cd1": cd}, nil
}

// PrepareUploadParams builds the UploadSubtitles argument from the intent and
// the TryUploadSubtitles params, adding the gzipped, base64 encoded subtitle:
//
//	array('baseinfo' => array('idmovieimdb', 'sublanguageid', ...), 'cd1' => array(..., 'subcontent'))
func PrepareUploadParams(intent UploadIntent, tryParams map[string]interface{}) (map[string]interface{}, error) {
	tryCD, ok := tryParams["cd1"].(map[string]interface{})
	if !ok {
		return nil, errors.New("try-upload params have no cd1 entry")
	}
	if intent.IMDBID == "" {
		return nil, errors.New("IMDB ID is required for upload")
	}

	content, err := ReadAndEncodeSubtitle(intent.SubtitleFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read and encode subtitle for upload: %w", err)
	}

	cd := make(map[string]interface{}, len(tryCD)+1)
	for k, v := range tryCD {
		cd[k] = v
	}
	cd["subcontent"] = content

	baseInfo := map[string]interface{}{
		"idmovieimdb":          strings.TrimPrefix(intent.IMDBID, "tt"),
		"hearingimpaired":      boolToXmlRpc(intent.HearingImpaired),
		"highdefinition":       boolToXmlRpc(intent.HighDefinition),
		"automatictranslation": boolToXmlRpc(intent.AutomaticTranslation),
		"foreignpartsonly":     boolToXmlRpc(intent.ForeignPartsOnly),
	}
	optional := map[string]string{
		"sublanguageid":    intent.LanguageID,
		"moviereleasename": intent.ReleaseName,
		"movieaka":         intent.MovieAka,
		"subauthorcomment": intent.Comment,
		"subtranslator":    intent.Translator,
	}
	for k, v := range optional {
		if v != "" {
			baseInfo[k] = v
		}
	}

	return map[string]interface{}{
		"baseinfo": baseInfo,
		"cd1":      cd,
	}, nil
}
