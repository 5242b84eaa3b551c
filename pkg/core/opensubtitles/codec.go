package opensubtitles

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// DecodeGzipBase64 turns a DownloadSubtitles payload back into the subtitle bytes.
func DecodeGzipBase64(encoded string) ([]byte, error) {
	gzipped, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %w", err)
	}
	gzipReader, err := gzip.NewReader(bytes.NewReader(gzipped))
	if err != nil {
		return nil, fmt.Errorf("gzip reader creation failed: %w", err)
	}
	defer gzipReader.Close()

	decompressed, err := io.ReadAll(gzipReader)
	if err != nil {
		return nil, fmt.Errorf("gzip decompress failed: %w", err)
	}
	return decompressed, nil
}

// EncodeGzipBase64 gzips data and base64 encodes the result, the format
// UploadSubtitles expects for subcontent.
func EncodeGzipBase64(data []byte) (string, error) {
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	if _, err := gzipWriter.Write(data); err != nil {
		return "", fmt.Errorf("gzip compress failed: %w", err)
	}
	if err := gzipWriter.Close(); err != nil {
		return "", fmt.Errorf("gzip writer close failed: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ReadAndEncodeSubtitle reads a subtitle file and returns it gzipped and base64 encoded.
func ReadAndEncodeSubtitle(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read subtitle file '%s': %w", path, err)
	}
	return EncodeGzipBase64(content)
}
