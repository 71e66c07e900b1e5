package loader

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is the table format inside a (possibly compressed) file.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// Compression is the compression wrapper of a file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	// xlsx files are zip archives.
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}
)

var compressionExtensions = map[string]Compression{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
}

// DetectCompression returns the compression of a file from its extension,
// falling back to the magic bytes at the start of data. It also returns
// the path with the compression extension removed.
func DetectCompression(path string, data []byte) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := compressionExtensions[ext]; ok {
		return c, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return compressionByMagic(data), path
}

func compressionByMagic(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, bzip2Magic):
		return CompressionBzip2
	case bytes.HasPrefix(data, xzMagic):
		return CompressionXZ
	default:
		return CompressionNone
	}
}

// DetectFormat returns the table format of decompressed data. The extension
// of path decides when it is known; otherwise a zip signature means xlsx
// and anything else is read as CSV.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case "":
		if bytes.HasPrefix(data, zipMagic) {
			return FormatXLSX
		}
		return FormatCSV
	default:
		if bytes.HasPrefix(data, zipMagic) {
			return FormatXLSX
		}
		return FormatUnknown
	}
}
