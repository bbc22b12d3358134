package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
)

// Stdin is the input path that selects standard input.
const Stdin = "-"

var dayNameRe = regexp.MustCompile(`^day(\d+)`)

// PuzzleFile is an input file discovered under the input directory.
type PuzzleFile struct {
	Day  int
	Path string
}

// IsStdinPiped checks if stdin is being piped to the program
func IsStdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// ReadLines returns the lines of path, or of stdin when path is "-".
// Lines are returned as-is apart from the line terminator.
func ReadLines(path string) ([]string, error) {
	if path == Stdin {
		lines, err := scanLines(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
		return lines, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	lines, err := scanLines(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// DefaultPath is where the input for day lives when no path is given.
func DefaultPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// DayFromName extracts N from a file named dayN*.
func DayFromName(name string) (int, bool) {
	m := dayNameRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return day, true
}

// Discover walks dir and returns the puzzle inputs whose path relative to dir
// matches pattern, ordered by day then path.
func Discover(dir string, pattern string) ([]PuzzleFile, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid input pattern: %s", pattern)
	}
	if dirStat, err := os.Stat(dir); err != nil || !dirStat.IsDir() {
		return nil, fmt.Errorf("input dir is not a directory: %s", dir)
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(dir, fileListQueue)
	walker.IncludeHidden = false

	errChan := make(chan error)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	files := make([]PuzzleFile, 0)
	var matchErr error
	for f := range fileListQueue {
		rel, err := filepath.Rel(dir, f.Location)
		if err != nil {
			rel = f.Location
		}
		rel = filepath.ToSlash(rel)
		match, err := doublestar.Match(pattern, rel)
		if err != nil {
			matchErr = err
			continue
		}
		if !match {
			continue
		}
		day, ok := DayFromName(rel)
		if !ok {
			continue
		}
		files = append(files, PuzzleFile{Day: day, Path: f.Location})
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("error walking input dir: %w", err)
	}
	if matchErr != nil {
		return nil, fmt.Errorf("error matching input pattern: %w", matchErr)
	}

	slices.SortFunc(files, func(a, b PuzzleFile) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}
