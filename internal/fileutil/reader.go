package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// BytesPerMB is the divisor used for every megabyte figure
const BytesPerMB = 1024 * 1024

// Logger is the subset of the diagnostic logger ReadFileSafely reports through
type Logger interface {
	LogWarn(message string)
	LogError(message string)
}

// ReadFileSafely reads path as text if it is no larger than maxSizeMB megabytes.
// Oversized and unreadable files are logged and reported as ok == false;
// invalid UTF-8 sequences are dropped from the content.
func ReadFileSafely(path string, maxSizeMB int, log Logger) (content string, ok bool) {
	info, err := os.Stat(path)
	if err != nil {
		logError(log, path, err)
		return "", false
	}

	if exceedsLimit(info.Size(), maxSizeMB) {
		if log != nil {
			log.LogWarn(fmt.Sprintf("Skipping large file '%s' (%.2f MB)", path, float64(info.Size())/BytesPerMB))
		}
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logError(log, path, err)
		return "", false
	}

	return strings.ToValidUTF8(string(data), ""), true
}

// exceedsLimit reports whether size bytes is more than maxSizeMB megabytes.
// The limit is never multiplied out, so huge limits cannot overflow.
func exceedsLimit(size int64, maxSizeMB int) bool {
	whole, rem := size/BytesPerMB, size%BytesPerMB
	limit := int64(maxSizeMB)
	return whole > limit || (whole == limit && rem > 0)
}

func logError(log Logger, path string, err error) {
	if log == nil {
		return
	}
	log.LogError(fmt.Sprintf("Error reading '%s': %v", path, err))
}
