package fileops

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// osdbHashChunkSize is the size of the chunk read from the start and end of the file.
const osdbHashChunkSize = 64 * 1024

// MovieHash is the OpenSubtitles hash of a video file and the size it was computed from.
type MovieHash struct {
	Hash string
	Size int64
}

// CalculateMD5Hash returns the hex MD5 of a file, the subhash sent on upload.
func CalculateMD5Hash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file for MD5 hashing '%s': %w", filePath, err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to read file for MD5 hashing '%s': %w", filePath, err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// CalculateOSDbHash computes the OpenSubtitles movie hash: the file size plus
// the little-endian uint64 sums of the first and last 64KiB, as 16 hex digits.
func CalculateOSDbHash(filePath string) (MovieHash, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return MovieHash{}, fmt.Errorf("failed to open file for OSDb hashing '%s': %w", filePath, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return MovieHash{}, fmt.Errorf("failed to stat file '%s': %w", filePath, err)
	}
	size := stat.Size()
	if size < osdbHashChunkSize*2 {
		return MovieHash{}, fmt.Errorf("file '%s' is too small for OSDb hashing (size: %d)", filePath, size)
	}

	sum := uint64(size)
	buf := make([]byte, osdbHashChunkSize)
	for _, offset := range []int64{0, size - osdbHashChunkSize} {
		if _, err := file.ReadAt(buf, offset); err != nil {
			return MovieHash{}, fmt.Errorf("failed to read chunk at %d from '%s': %w", offset, filePath, err)
		}
		sum += checksumBuffer(buf)
	}

	return MovieHash{Hash: fmt.Sprintf("%016x", sum), Size: size}, nil
}

// checksumBuffer sums buf as 64-bit little-endian words; overflow wraps.
func checksumBuffer(buf []byte) (sum uint64) {
	for i := 0; i+8 <= len(buf); i += 8 {
		sum += binary.LittleEndian.Uint64(buf[i : i+8])
	}
	return
}
