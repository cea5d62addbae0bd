package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"

	"oss/grammar"
	"oss/internal/config"
	"oss/internal/errors"
	"oss/internal/lexer"
	"oss/internal/parser"
	"oss/internal/watch"
)

type checker struct {
	opts options
	cfg  *config.Config
	out  io.Writer
}

func (c *checker) checkAll(paths []string) bool {
	startTime := time.Now()

	paths, ok := c.expand(paths)
	for _, path := range paths {
		if !c.check(path) {
			ok = false
		}
	}

	duration := formatDuration(time.Since(startTime))
	if !ok {
		color.New(color.FgRed).Fprintf(c.out, "Check failed after %s\n", duration)
		return false
	}
	if !c.opts.quiet {
		color.New(color.FgGreen).Fprintf(c.out, "Successfully processed %d file(s) in %s\n", len(paths), duration)
	}
	return true
}

// expand replaces each directory with the files below it that carry a
// watched extension.
func (c *checker) expand(paths []string) ([]string, bool) {
	ok := true
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != path && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			ext := filepath.Ext(p)
			if slices.ContainsFunc(c.cfg.Watch.Extensions, func(e string) bool { return strings.EqualFold(e, ext) }) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(c.out, "failed to list %s: %v\n", path, err)
			ok = false
		}
	}
	return files, ok
}

// check parses one file and prints either its AST or the diagnostic.
func (c *checker) check(path string) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(c.out, "failed to read file: %v\n", err)
		return false
	}
	log.Debugf("checking %s", path)

	if c.opts.tokens {
		return c.dumpTokens(path, string(source))
	}

	file, err := parser.ParseSource(path, string(source))
	if err != nil {
		c.report(path, string(source), err)
		return false
	}

	if c.opts.grammar {
		outline, err := grammar.Parse(path, string(source))
		if err != nil {
			// the declarative grammar is expected to accept whatever the parser accepts
			log.Warningf("%s: grammar rejected a document the parser accepted: %s", path, err)
			grammar.ReportError(c.out, string(source), err)
			return false
		}
		if !c.opts.quiet {
			fmt.Fprint(c.out, outline.String())
		}
	}

	if !c.opts.quiet && !c.opts.grammar {
		fmt.Fprintln(c.out, file.String())
	}
	return true
}

func (c *checker) report(path, source string, err error) {
	diag, ok := errors.FromError(err)
	if !ok {
		fmt.Fprintf(c.out, "%s: %v\n", path, err)
		return
	}
	reporter := errors.NewErrorReporter(path, source)
	reporter.SetContextLines(c.cfg.Output.Lines())
	fmt.Fprint(c.out, reporter.FormatError(diag))
}

func (c *checker) dumpTokens(path, source string) bool {
	l := lexer.New(source)
	for {
		tok, err := l.Next()
		if err != nil {
			c.report(path, source, err)
			return false
		}
		if !c.opts.quiet {
			fmt.Fprintf(c.out, "%d:%d\t%-18s %s\n", tok.Position.Line, tok.Position.Column, tok.Type, tok.Lexeme)
		}
		if tok.Type == lexer.EOF {
			return true
		}
	}
}

func (c *checker) watch(ctx context.Context, paths []string) error {
	c.checkAll(paths)

	w, err := watch.New(watch.Config{
		Paths:      paths,
		Extensions: c.cfg.Watch.Extensions,
		Debounce:   c.cfg.Watch.Debounce,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	log.Infof("watching %d path(s)", len(paths))
	return w.Watch(ctx, func(changed []string) {
		log.Infof("%d file(s) changed", len(changed))
		c.checkAll(changed)
	})
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
