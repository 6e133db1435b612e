// Package days holds the solutions, one file per day.
package days

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/maisem/aoc2023"
)

// The solution sources carry their samples in doc comments.
//
//go:embed day??.go
var sources embed.FS

// Register adds every solved day to r, along with its samples.
func Register(r *aoc.Registry) error {
	files, err := fs.Glob(sources, "day??.go")
	if err != nil {
		return err
	}
	for _, name := range files {
		src, err := sources.ReadFile(name)
		if err != nil {
			return err
		}
		if err := r.AddSamples(src); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	aoc.Register[uint](r, 1, Trebuchet{})
	return nil
}
