// Package loader reads player files from disk into datasets.
//
// Files are read whole. CSV, text and xlsx inputs are supported, each
// optionally compressed with gzip, bzip2 or xz.
package loader

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/minio/highwayhash"
	"github.com/xuri/excelize/v2"

	"github.com/dbmrq/draftboard/internal/config"
	drafterrors "github.com/dbmrq/draftboard/internal/errors"
	"github.com/dbmrq/draftboard/internal/logging"
	"github.com/dbmrq/draftboard/internal/player"
)

// fingerprintKey is the HighwayHash key. Fingerprints are only compared
// within one process, so a fixed key is fine.
var fingerprintKey = []byte("draftboard-fingerprint-key-32byt")

// Fingerprint hashes raw file bytes.
func Fingerprint(data []byte) uint64 {
	return highwayhash.Sum64(data, fingerprintKey)
}

// Load reads the file at path and parses it with the given columns.
func Load(ctx context.Context, path string, cols config.ColumnsConfig) (*player.Dataset, error) {
	log := logging.FromContext(logging.WithSource(ctx, path))

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, drafterrors.FileNotFound(path)
		}
		return nil, drafterrors.LoadFailed(path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := Decode(path, raw, cols)
	if err != nil {
		return nil, err
	}

	log.Info("loaded player file",
		"records", len(ds.Records),
		"categories", len(ds.Categories),
		"skipped", ds.Skipped)
	if ds.Skipped > 0 {
		log.Debug("dropped rows without a first and last name", "count", ds.Skipped)
	}
	for _, k := range player.DuplicateKeys(ds.Records) {
		log.Warn("duplicate player name", "name", k.String())
	}

	return ds, nil
}

// Decode parses the raw bytes of a file. path is used for format
// detection and error messages only.
func Decode(path string, raw []byte, cols config.ColumnsConfig) (*player.Dataset, error) {
	compression, inner := DetectCompression(path, raw)
	data, err := decompress(raw, compression)
	if err != nil {
		return nil, drafterrors.LoadFailed(path, err).WithDetails("compression", compression.String())
	}

	var ds *player.Dataset
	switch format := DetectFormat(inner, data); format {
	case FormatCSV:
		ds, err = player.Parse(string(data), cols)
	case FormatXLSX:
		ds, err = parseXLSX(data, cols)
		if err != nil && !isParseError(err) {
			return nil, drafterrors.LoadFailed(path, err)
		}
	default:
		return nil, drafterrors.Unsupported(path, filepath.Ext(inner))
	}
	if err != nil {
		if errors.Is(err, drafterrors.ErrEmptyFile) {
			return nil, drafterrors.EmptyFile(path)
		}
		return nil, err
	}

	ds.Source = path
	ds.Fingerprint = Fingerprint(raw)
	return ds, nil
}

// parseXLSX reads the first sheet of an xlsx workbook.
func parseXLSX(data []byte, cols config.ColumnsConfig) (*player.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, drafterrors.EmptyFile("")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return player.ParseRows(rows, cols)
}

func isParseError(err error) bool {
	var de *drafterrors.DraftError
	return errors.As(err, &de)
}
