package loader

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	drafterrors "github.com/dbmrq/draftboard/internal/errors"
)

// IsPattern reports whether arg contains glob syntax.
func IsPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// Resolve turns a file argument into a path. An existing file is used as
// is, even when its name contains glob characters. Otherwise a plain path
// must exist, and a doublestar pattern such as "exports/**/*.csv" resolves
// to the most recently modified matching file.
func Resolve(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		return arg, nil
	}

	if !IsPattern(arg) {
		info, err := os.Stat(arg)
		if err != nil {
			if os.IsNotExist(err) {
				return "", drafterrors.FileNotFound(arg)
			}
			return "", drafterrors.LoadFailed(arg, err)
		}
		if info.IsDir() {
			return "", drafterrors.Unsupported(arg, "directory")
		}
		return arg, nil
	}

	if !doublestar.ValidatePattern(arg) {
		return "", drafterrors.NoMatches(arg)
	}

	matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
	if err != nil {
		return "", drafterrors.LoadFailed(arg, err)
	}

	var (
		newest     string
		newestInfo os.FileInfo
	)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if newestInfo == nil || info.ModTime().After(newestInfo.ModTime()) ||
			(info.ModTime().Equal(newestInfo.ModTime()) && m < newest) {
			newest, newestInfo = m, info
		}
	}
	if newest == "" {
		return "", drafterrors.NoMatches(arg)
	}
	return newest, nil
}
