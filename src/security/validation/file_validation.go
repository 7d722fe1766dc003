package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/username/brokertax/src/logger"
)

const CSVFileExtension = ".csv"

// User facing upload messages.
const (
	MessageFileEmpty       = "Datei ist leer"
	MessageInvalidFileType = "Nur CSV-Dateien sind erlaubt"
	MessageFileTooLarge    = "Datei ist zu groß"
)

// ErrInvalidFile is wrapped by every upload rejection. The wrapped message is
// safe to show to the client.
var ErrInvalidFile = errors.New("invalid file")

// AllowedClientContentTypes is a map for quick lookup of allowed client-declared MIME types.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true, // Often used for CSV by older Excel
	"text/plain":               true,
	"application/octet-stream": true, // curl and some browsers send this for unknown extensions
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": false,
}

var allowedDetectedTypes = map[string]bool{
	"text/plain":      true,
	"text/csv":        true,
	"application/csv": true,
}

func invalidFile(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFile, msg)
}

// Message returns the client message carried by an ErrInvalidFile error.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidFile.Error()+": ")
}

// ValidateFileName accepts only names ending in .csv, in any case.
func ValidateFileName(name string) error {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || !strings.EqualFold(filepath.Ext(base), CSVFileExtension) {
		logger.L.Warn("Rejected file name", "fileName", SanitizeText(name))
		return invalidFile(MessageInvalidFileType)
	}
	return nil
}

// ValidateClientContentType checks the Content-Type header provided by the client.
// An empty header is accepted; the content sniffing decides.
func ValidateClientContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if allowed, exists := AllowedClientContentTypes[mediaType]; !exists || !allowed {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return invalidFile(MessageInvalidFileType)
	}
	return nil
}

// isBinaryContent reports null bytes or invalid UTF-8 in buf. A multi-byte
// rune cut off at the end of buf is not counted as invalid.
func isBinaryContent(buf []byte) bool {
	if bytes.IndexByte(buf, 0) != -1 {
		return true
	}
	for i := 0; i < utf8.UTFMax && len(buf) > 0 && !utf8.Valid(buf); i++ {
		if r, _ := utf8.DecodeLastRune(buf); r != utf8.RuneError {
			break
		}
		buf = buf[:len(buf)-1]
	}
	return !utf8.Valid(buf)
}

// ValidateFileContent inspects the first KB of file and rewinds it. Empty and
// binary files are rejected.
func ValidateFileContent(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", invalidFile(MessageFileEmpty)
	}

	buffer := make([]byte, 1024)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", err)
	}

	if n == 0 {
		return "", invalidFile(MessageFileEmpty)
	}

	if isBinaryContent(buffer[:n]) {
		logger.L.Warn("File rejected: Binary content detected in text upload")
		return "application/octet-stream", invalidFile(MessageInvalidFileType)
	}

	detected := http.DetectContentType(buffer[:n])
	detected = strings.ToLower(strings.Split(detected, ";")[0])
	if !allowedDetectedTypes[detected] {
		logger.L.Warn("Disallowed detected file content type", "detectedContentType", detected)
		return detected, invalidFile(MessageInvalidFileType)
	}

	logger.L.Debug("File content type validated", "detectedContentType", detected)
	return detected, nil
}
