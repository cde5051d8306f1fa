// Command scssflat compiles a strict SCSS subset into flat CSS.
//
// Usage:
//
//	scssflat '<source>'
//	scssflat -manifest manifest.yaml
//
// The first form takes the SCSS source as a single positional argument and
// writes the compiled CSS to stdout. The second form batch-compiles every
// file a manifest's glob patterns match; it is a CLI-only convenience and
// does not change the semantics of Compile.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrianhall/scssflat/internal/log"
	"github.com/adrianhall/scssflat/internal/manifest"

	scss "github.com/adrianhall/scssflat"
)

func main() {
	manifestPath := flag.String("manifest", "", "batch-compile every file a manifest entry's glob matches")
	flag.Parse()

	if *manifestPath != "" {
		if err := runManifest(*manifestPath); err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: scssflat '<source>' | scssflat -manifest <path>")
		os.Exit(0)
	}

	out, err := scss.Compile([]byte(args[0]), func(pos int, kind scss.ErrKind) {
		log.Warn("at byte %d: %s", pos, kind)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Stdout.Write(out)
}

func runManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return err
	}

	files, err := manifest.Expand(m, filepath.Dir(path))
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := compileFile(f); err != nil {
			log.Error("%s: %v", f.Path, err)
			return err
		}
		log.Info("compiled %s", f.Path)
	}
	return nil
}

func compileFile(f manifest.ResolvedFile) error {
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.Path, err)
	}

	out, err := scss.Compile(src, func(pos int, kind scss.ErrKind) {
		log.Warn("%s: at byte %d: %s", f.Path, pos, kind)
	})
	if err != nil {
		return fmt.Errorf("compile %s: %w", f.Path, err)
	}

	outPath := manifest.OutputPath(f)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return os.WriteFile(outPath, out, 0o644)
}
