package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/errlens/internal/errlog"
)

// Load reads the log at path into a Source. A missing file yields a Source
// that is not available and no error; an existing empty file is available
// with no lines. When maxLines is positive only the last maxLines lines are
// kept.
func Load(path string, maxLines int) (errlog.Source, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errlog.Source{}, nil
		}
		return errlog.Source{}, err
	}
	return errlog.Source{Lines: lines, Available: true}, nil
}

// Read returns the lines of the file at path, or at most maxLines from its
// end when maxLines is positive. Open errors wrap the underlying error so
// callers can test for os.ErrNotExist.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 64*1024)

	if maxLines <= 0 {
		lines := []string{}
		err := eachLine(reader, func(line string) {
			lines = append(lines, line)
		})
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	err = eachLine(reader, func(line string) {
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// eachLine calls fn for every line in r with its line ending removed. Lines
// have no length limit; a final line without a newline is still reported.
func eachLine(r *bufio.Reader, fn func(string)) error {
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Truncate empties the log at path without removing it. A missing file is
// reported as an error wrapping os.ErrNotExist.
func Truncate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("truncate log: %s is a directory", path)
	}
	if err := os.Truncate(path, 0); err != nil {
		return fmt.Errorf("truncate log: %w", err)
	}
	return nil
}
