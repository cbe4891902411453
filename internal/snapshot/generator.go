// Package snapshot walks a directory tree and writes the selected files into a
// single Markdown document, one heading and fenced code block per file.
package snapshot

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/dir2md/internal/filelock"
	"github.com/harrison/dir2md/internal/fileutil"
	"github.com/harrison/dir2md/internal/logger"
)

// Options configures a snapshot run
type Options struct {
	// Root is the directory to traverse
	Root string
	// Output is the document to create (truncated if it exists)
	Output string
	// Types is the extension allow-list; empty includes every file
	Types []string
	// Ignore lists path component names to skip. nil selects
	// fileutil.DefaultIgnoreDirs, an empty non-nil slice ignores nothing.
	Ignore []string
	// Recursive enables descent into subdirectories
	Recursive bool
	// MaxSizeMB is the per-file ceiling in megabytes
	MaxSizeMB int
}

// Result summarizes a completed run
type Result struct {
	// Root is the resolved traversal root
	Root string
	// Output is the absolute path of the written document
	Output string
	// Processed counts files written to the document
	Processed int
	// Skipped counts files rejected by the size limit or a read failure,
	// plus special files such as FIFOs
	Skipped int
}

type generator struct {
	root      string
	ignore    fileutil.NameSet
	types     fileutil.NameSet
	recursive bool
	maxSizeMB int
	log       logger.Logger

	out     *bufio.Writer
	outInfo os.FileInfo
	outName string
	lockAbs string

	result *Result
}

// Generate writes the snapshot document described by opts.
// Per-file problems are logged and skipped; only setup failures (bad root,
// unopenable or locked output) and output write errors are returned.
func Generate(ctx context.Context, opts Options, log logger.Logger) (*Result, error) {
	if log == nil {
		log = logger.NewMultiLogger()
	}

	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path %s: %w", opts.Output, err)
	}

	ignoreNames := opts.Ignore
	if ignoreNames == nil {
		ignoreNames = fileutil.DefaultIgnoreDirs
	}

	g := &generator{
		root:      root,
		ignore:    fileutil.NewNameSet(ignoreNames),
		types:     fileutil.NormalizeExtensions(opts.Types),
		recursive: opts.Recursive,
		maxSizeMB: opts.MaxSizeMB,
		log:       log,
		outName:   filepath.Base(output),
		lockAbs:   filelock.PathFor(output),
		result:    &Result{Root: root, Output: output},
	}

	log.LogInfo(fmt.Sprintf("Scanning directory: %s", root))

	lock, err := filelock.Acquire(output)
	if err != nil {
		return nil, fmt.Errorf("failed to lock output file: %w", err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			log.LogWarn(err.Error())
		}
	}()

	file, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	g.outInfo, err = file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat output file: %w", err)
	}
	g.out = bufio.NewWriter(file)
	defer g.out.Flush()

	if err := g.walkDir(ctx, root); err != nil {
		return nil, err
	}

	if err := g.out.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}

	log.LogInfo(fmt.Sprintf("Markdown file '%s' created successfully with %d files processed.", output, g.result.Processed))
	return g.result, nil
}

// resolveRoot returns the absolute, symlink-free form of dir, which must be a directory
func resolveRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", abs)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", abs, err)
	}
	return resolved, nil
}

// walkDir processes the files of dir, then descends into its surviving
// subdirectories. Entries come back from os.ReadDir sorted by name.
func (g *generator) walkDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == g.root {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		g.log.LogError(fmt.Sprintf("Error listing '%s': %v", dir, err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			// Pruned before descent, nothing below is visited
			if g.ignore.Contains(entry.Name()) {
				g.log.LogTrace(fmt.Sprintf("Pruned directory: %s", path))
				continue
			}
			subdirs = append(subdirs, path)
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.processFile(entry, path); err != nil {
			return err
		}
	}

	if !g.recursive {
		return nil
	}

	for _, sub := range subdirs {
		if err := g.walkDir(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

// isCandidate filters out entries that are not readable files: symlinks to
// directories (never followed) and special files such as FIFOs and sockets.
// Broken symlinks stay candidates so the read failure is logged.
func (g *generator) isCandidate(entry fs.DirEntry, path string) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}

	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return true
		}
		if info.IsDir() {
			return false
		}
		mode = info.Mode()
		if mode.IsRegular() {
			return true
		}
	}

	g.log.LogWarn(fmt.Sprintf("Skipping non-regular file '%s' (%s)", path, mode.Type()))
	g.result.Skipped++
	return false
}

func (g *generator) processFile(entry fs.DirEntry, path string) error {
	rel, err := filepath.Rel(g.root, path)
	if err != nil {
		rel = path
	}

	if fileutil.IsIgnored(rel, g.ignore) {
		return nil
	}

	if g.types != nil && !g.types.Contains(strings.ToLower(fileutil.Suffix(path))) {
		return nil
	}

	if g.isOwnOutput(path) {
		g.log.LogDebug(fmt.Sprintf("Skipping output document: %s", rel))
		return nil
	}

	if !g.isCandidate(entry, path) {
		return nil
	}

	content, ok := fileutil.ReadFileSafely(path, g.maxSizeMB, g.log)
	if !ok {
		g.result.Skipped++
		return nil
	}

	if err := writeSection(g.out, rel, fileutil.LanguageTag(path), content); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	g.result.Processed++
	g.log.LogInfo(fmt.Sprintf("Processed file: %s", rel))
	return nil
}

// isOwnOutput reports whether path is the document being written or its lock file
func (g *generator) isOwnOutput(path string) bool {
	name := filepath.Base(path)
	if name == filepath.Base(g.lockAbs) {
		if lockInfo, err := os.Stat(g.lockAbs); err == nil {
			if info, err := os.Stat(path); err == nil && os.SameFile(info, lockInfo) {
				return true
			}
		}
	}
	if name != g.outName {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(info, g.outInfo)
}
