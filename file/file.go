package file

import (
	"bufio"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jsphweid/ringdex/constants"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// ReadRingtones returns one RTTTL string per line of r. Blank lines and lines
// starting with '#' are skipped.
func ReadRingtones(r io.Reader) ([]string, error) {
	var res []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Could not read ringtones")
	}
	return res, nil
}

func isRingtoneFile(path string) bool {
	return slices.Contains(constants.RingtoneExtensions, strings.ToLower(filepath.Ext(path)))
}

// GatherRingtonePaths walks dir for ringtone files. A maxNum of 0 means no
// limit.
func GatherRingtonePaths(dir string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isRingtoneFile(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, errors.Wrapf(err, "Error walking %v", dir)
	}
	return res, nil
}
