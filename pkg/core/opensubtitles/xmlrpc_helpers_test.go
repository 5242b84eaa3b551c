package opensubtitles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const dummySubtitle = "1\n00:00:01,000 --> 00:00:02,000\nHello\n"

func writeTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestPrepareTryUploadParams_SubOnly_Success(t *testing.T) {
	intent := UploadIntent{
		SubtitleFilePath: writeTestFile(t, "dummy.srt", []byte(dummySubtitle)),
		LanguageID:       "eng",
		IMDBID:           "1234567",
	}
	params, err := PrepareTryUploadParams(intent)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	cd := params["cd1"].(map[string]interface{})
	if cd["subhash"] == "" || cd["subfilename"] != "dummy.srt" {
		t.Errorf("Subtitle hash or filename not set correctly: %v", cd)
	}
	if _, ok := cd["moviehash"]; ok {
		t.Errorf("No movie hash expected without video: %v", cd)
	}
}

func TestPrepareTryUploadParams_SubOnly_MissingLang(t *testing.T) {
	intent := UploadIntent{
		SubtitleFilePath: writeTestFile(t, "dummy.srt", []byte(dummySubtitle)),
		IMDBID:           "1234567",
	}
	_, err := PrepareTryUploadParams(intent)
	if err == nil || err.Error() != "language ID is required if no video file is provided" {
		t.Fatalf("Expected language ID error, got: %v", err)
	}
}

func TestPrepareTryUploadParams_SubOnly_MissingIMDB(t *testing.T) {
	intent := UploadIntent{
		SubtitleFilePath: writeTestFile(t, "dummy.srt", []byte(dummySubtitle)),
		LanguageID:       "eng",
	}
	_, err := PrepareTryUploadParams(intent)
	if err == nil || err.Error() != "IMDB ID is required if no video file is provided" {
		t.Fatalf("Expected IMDB ID error, got: %v", err)
	}
}

func TestPrepareTryUploadParams_SubAndVideo_Success(t *testing.T) {
	intent := UploadIntent{
		SubtitleFilePath: writeTestFile(t, "dummy.srt", []byte(dummySubtitle)),
		VideoFilePath:    writeTestFile(t, "video.mkv", make([]byte, 2*64*1024)),
		FPS:              23.976,
	}
	params, err := PrepareTryUploadParams(intent)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	cd := params["cd1"].(map[string]interface{})
	if cd["moviehash"] != "0000000000020000" || cd["moviefilename"] != "video.mkv" {
		t.Errorf("Movie hash or filename not set correctly: %v", cd)
	}
	if cd["moviebytesize"] != "131072" || cd["moviefps"] != "23.976" {
		t.Errorf("Movie size or fps not set correctly: %v", cd)
	}
}

func TestPrepareTryUploadParams_MissingSubtitle(t *testing.T) {
	_, err := PrepareTryUploadParams(UploadIntent{LanguageID: "eng", IMDBID: "1234567"})
	if err == nil || err.Error() != "subtitle file path is required" {
		t.Fatalf("Expected subtitle file path error, got: %v", err)
	}
}

func TestPrepareUploadParams(t *testing.T) {
	intent := UploadIntent{
		SubtitleFilePath: writeTestFile(t, "dummy.srt", []byte(dummySubtitle)),
		LanguageID:       "eng",
		IMDBID:           "tt1234567",
		ReleaseName:      "Movie.2020.1080p.WEB",
		HearingImpaired:  true,
	}
	tryParams, err := PrepareTryUploadParams(intent)
	if err != nil {
		t.Fatalf("PrepareTryUploadParams failed: %v", err)
	}
	params, err := PrepareUploadParams(intent, tryParams)
	if err != nil {
		t.Fatalf("PrepareUploadParams failed: %v", err)
	}

	base := params["baseinfo"].(map[string]interface{})
	if base["idmovieimdb"] != "1234567" || base["sublanguageid"] != "eng" {
		t.Errorf("Unexpected baseinfo: %v", base)
	}
	if base["hearingimpaired"] != "1" || base["highdefinition"] != "0" {
		t.Errorf("Flags not converted to 1/0: %v", base)
	}
	if _, ok := base["subtranslator"]; ok {
		t.Errorf("Empty fields must be omitted: %v", base)
	}

	cd := params["cd1"].(map[string]interface{})
	tryCD := tryParams["cd1"].(map[string]interface{})
	if cd["subhash"] != tryCD["subhash"] {
		t.Errorf("cd1 must carry the try-upload fields: %v", cd)
	}
	if _, ok := tryCD["subcontent"]; ok {
		t.Error("PrepareUploadParams must not modify the try-upload params")
	}
	decoded, err := DecodeGzipBase64(cd["subcontent"].(string))
	if err != nil {
		t.Fatalf("subcontent decode failed: %v", err)
	}
	if string(decoded) != dummySubtitle {
		t.Errorf("subcontent round trip mismatch: %q", decoded)
	}
}

func TestGzipBase64_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(dummySubtitle),
		{},
		bytes.Repeat([]byte{0x00, 0xff, 0x10}, 4096),
	}
	for _, original := range inputs {
		encoded, err := EncodeGzipBase64(original)
		if err != nil {
			t.Fatalf("EncodeGzipBase64 failed: %v", err)
		}
		decoded, err := DecodeGzipBase64(encoded)
		if err != nil {
			t.Fatalf("DecodeGzipBase64 failed: %v", err)
		}
		if !bytes.Equal(original, decoded) {
			t.Errorf("Round trip mismatch.\nOriginal: %q\nDecoded: %q", original, decoded)
		}
	}
}

func TestDecodeGzipBase64_NotGzip(t *testing.T) {
	if _, err := DecodeGzipBase64("aGVsbG8="); err == nil {
		t.Fatal("Expected error for base64 payload that is not gzip")
	}
}
