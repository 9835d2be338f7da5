package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates an explicit format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatParquet:
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the format from the file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet", ".pq":
		return FormatParquet
	default:
		return FormatCSV
	}
}

// WriteFile writes the dataset to path in a single pass.
func WriteFile(path string, format Format, ds *domain.Dataset) (err error) {
	var encode func(io.Writer, *domain.Dataset) error
	switch format {
	case FormatCSV:
		encode = WriteCSV
	case FormatParquet:
		encode = WriteParquet
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// The Parquet writer closes any io.Closer it is given; the buffer keeps f ours.
	bw := bufio.NewWriter(f)
	if err = encode(bw, ds); err != nil {
		return err
	}
	return bw.Flush()
}
