package lotwheel

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSourceHeaders checks that every non-doc, non-test source file opens with
// the license line followed by its package path.
func TestSourceHeaders(t *testing.T) {
	var checked int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == "doc.go" {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		var lines []string
		for len(lines) < 2 && sc.Scan() {
			lines = append(lines, sc.Text())
		}
		require.Len(t, lines, 2, path)
		require.Equal(t, "// SPDX-License-Identifier: MIT", lines[0], path)
		require.Equal(t, "// Package: lotwheel/"+filepath.ToSlash(filepath.Dir(path)), lines[1], path)
		checked++

		return nil
	})
	require.NoError(t, err)
	require.Positive(t, checked)
}
