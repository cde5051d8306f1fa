// Package manifest implements the CLI's optional batch-compile mode: a
// manifest file lists named glob patterns, each of which expands to a set
// of SCSS source files to compile independently. This sits entirely
// outside the pure Compile call — the manifest format and file discovery
// are CLI-level conveniences, not part of the core language.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Entry is a single named batch of inputs. Glob is matched with doublestar
// (so "**" works) relative to the manifest's own directory. OutDir, if
// set, is where each matched file's compiled ".css" sibling is written;
// an empty OutDir writes next to the source file.
type Entry struct {
	Name   string `yaml:"name" json:"name"`
	Glob   string `yaml:"glob" json:"glob"`
	OutDir string `yaml:"out_dir" json:"out_dir"`
}

// Manifest is the top-level shape of a manifest file.
type Manifest struct {
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Parse decodes a manifest from raw bytes. Inline "//" and "/* */" comments
// are stripped first via jsonc, so both a JSONC manifest and a plain YAML
// one (YAML is otherwise untouched by that pass) decode through the same
// yaml.Unmarshal call — YAML is a superset of JSON, so this needs no
// format sniffing.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// ResolvedFile is a single glob match paired with the entry it came from.
type ResolvedFile struct {
	Entry Entry
	Path  string
}

// Expand resolves every entry's Glob against baseDir using doublestar,
// preserving manifest order and, within an entry, the order doublestar
// returns (lexical, per its contract).
func Expand(m *Manifest, baseDir string) ([]ResolvedFile, error) {
	var out []ResolvedFile
	for _, entry := range m.Entries {
		pattern := entry.Glob
		if !filepath.IsAbs(pattern) {
			pattern = filepath.ToSlash(filepath.Join(baseDir, pattern))
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("entry %q: expand glob %q: %w", entry.Name, entry.Glob, err)
		}
		for _, match := range matches {
			out = append(out, ResolvedFile{Entry: entry, Path: match})
		}
	}
	return out, nil
}

// OutputPath computes where a resolved file's compiled CSS should be
// written: alongside the source if Entry.OutDir is empty, otherwise in
// OutDir under the source's base name.
func OutputPath(rf ResolvedFile) string {
	base := filepath.Base(rf.Path)
	css := trimExt(base) + ".css"
	if rf.Entry.OutDir == "" {
		return filepath.Join(filepath.Dir(rf.Path), css)
	}
	return filepath.Join(rf.Entry.OutDir, css)
}

func trimExt(name string) string {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)]
}
