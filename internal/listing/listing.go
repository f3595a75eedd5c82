package listing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/JohnDeved/docfmt/internal/config"
	"github.com/JohnDeved/docfmt/internal/util"
)

// Entry represents a file or directory in a local listing.
type Entry struct {
	Name    string
	Path    string // Full path
	Size    int64  // Bytes; zero for directories
	ModTime time.Time
	IsDir   bool
}

// Row holds the display strings for one entry.
type Row struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Date  string `json:"date"`
	IsDir bool   `json:"is_dir"`
}

// Read lists the immediate children of dir, directories first, each group
// sorted by name.
func Read(ctx context.Context, dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := de.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", de.Name(), err)
		}
		e := Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			ModTime: info.ModTime(),
			IsDir:   de.IsDir(),
		}
		if !e.IsDir {
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Row formats e using the truncation settings in cfg.
func (e Entry) Row(cfg *config.Config) Row {
	r := Row{
		Name:  util.TruncateStringWith(e.Name, cfg.FrontChars, cfg.BackChars, cfg.Ellipsis),
		Date:  util.FormatTime(e.ModTime),
		IsDir: e.IsDir,
	}
	if e.IsDir {
		r.Name += "/"
	} else {
		r.Size = util.FormatFileSize(float64(e.Size))
	}
	return r
}
