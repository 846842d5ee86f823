// Command musesum prints or checks musehash digests of files.
//
//	musesum [--seed-a=N] [--seed-b=N] [--tag] [FILE...]
//	musesum --check [FILE...]
//
// With no FILE, or when FILE is -, it reads standard input. Each output
// line is "<digest>  <name>", or "MUSE64 (<name>) = <digest>" with --tag.
// Check mode accepts both forms.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/coregx/coregex"

	"go.dw1.io/musehash/internal/convert"
	"go.dw1.io/musehash/internal/file"
)

const stdinName = "-"

var (
	errFailed   = errors.New("one or more inputs could not be read")
	errMismatch = errors.New("computed checksums did NOT match")
)

var (
	plainLine  = mustCompile(`^([0-9a-fA-F]{16}) [ *](.+)$`)
	taggedLine = mustCompile(`^MUSE64 \((.+)\) = ([0-9a-fA-F]{16})$`)
)

type cli struct {
	SeedA string   `help:"First seed (decimal, 0x, 0o or 0b)" env:"MUSESUM_SEED_A" default:"0"`
	SeedB string   `help:"Second seed (decimal, 0x, 0o or 0b)" env:"MUSESUM_SEED_B" default:"0"`
	Tag   bool     `help:"Print BSD-style tagged lines"`
	Check bool     `short:"c" help:"Read digests from the FILEs and verify them"`
	Files []string `arg:"" optional:"" name:"file" help:"Inputs to hash; - or none reads stdin"`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("musesum"),
		kong.Description("Print or check musehash (64-bit) digests."),
	)

	if err := params.run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "musesum: %v\n", err)
		os.Exit(1)
	}
}

func (c *cli) run(stdin io.Reader, stdout, stderr io.Writer) error {
	seedA, err := convert.Uint64(c.SeedA)
	if err != nil {
		return fmt.Errorf("parse --seed-a: %w", err)
	}

	seedB, err := convert.Uint64(c.SeedB)
	if err != nil {
		return fmt.Errorf("parse --seed-b: %w", err)
	}

	names := c.Files
	if len(names) == 0 {
		names = []string{stdinName}
	}

	s := summer{seedA: seedA, seedB: seedB, stdin: stdin}
	if c.Check {
		return s.checkAll(names, stdout, stderr)
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	var failed bool
	for _, name := range names {
		sum, err := s.sum(name)
		if err != nil {
			fmt.Fprintf(stderr, "musesum: %v\n", err)
			failed = true
			continue
		}

		if c.Tag {
			fmt.Fprintf(out, "MUSE64 (%s) = %016x\n", name, sum)
		} else {
			fmt.Fprintf(out, "%016x  %s\n", sum, name)
		}
	}

	if failed {
		return errFailed
	}

	return nil
}

type summer struct {
	seedA, seedB uint64
	stdin        io.Reader
}

func (s summer) sum(name string) (uint64, error) {
	if name == stdinName {
		sum, err := file.Sum64(s.stdin, s.seedA, s.seedB)
		if err != nil {
			return 0, fmt.Errorf("read stdin: %w", err)
		}
		return sum, nil
	}

	f, err := file.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sum, err := f.Sum64(s.seedA, s.seedB)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}

	return sum, nil
}

func (s summer) checkAll(names []string, stdout, stderr io.Writer) error {
	var res checkResult
	for _, name := range names {
		if err := s.check(name, stdout, stderr, &res); err != nil {
			fmt.Fprintf(stderr, "musesum: %v\n", err)
			res.unreadable++
		}
	}

	if res.mismatched > 0 {
		fmt.Fprintf(stderr, "musesum: WARNING: %d computed checksum(s) did NOT match\n", res.mismatched)
	}
	if res.malformed > 0 {
		fmt.Fprintf(stderr, "musesum: WARNING: %d line(s) improperly formatted\n", res.malformed)
	}

	switch {
	case res.mismatched > 0:
		return errMismatch
	case res.unreadable > 0:
		return errFailed
	case res.checked == 0:
		return errors.New("no properly formatted checksum lines found")
	}

	return nil
}

type checkResult struct {
	checked    int
	mismatched int
	malformed  int
	unreadable int
}

func (s summer) check(name string, stdout, stderr io.Writer, res *checkResult) error {
	var r io.Reader = s.stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		want, target, ok := parseLine(line)
		if !ok {
			res.malformed++
			continue
		}

		res.checked++
		got, err := s.sum(target)
		if err != nil {
			fmt.Fprintf(stderr, "musesum: %v\n", err)
			fmt.Fprintf(stdout, "%s: FAILED open or read\n", target)
			res.unreadable++
			continue
		}

		if got != want {
			fmt.Fprintf(stdout, "%s: FAILED\n", target)
			res.mismatched++
			continue
		}

		fmt.Fprintf(stdout, "%s: OK\n", target)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	return nil
}

// parseLine extracts the digest and target name from a plain or tagged
// checksum line.
func parseLine(line string) (sum uint64, name string, ok bool) {
	var hex string
	if m := taggedLine.FindStringSubmatch(line); m != nil {
		name, hex = m[1], m[2]
	} else if m := plainLine.FindStringSubmatch(line); m != nil {
		hex, name = m[1], m[2]
	} else {
		return 0, "", false
	}

	sum, err := convert.Uint64("0x" + hex)
	if err != nil {
		return 0, "", false
	}

	return sum, name, true
}

func mustCompile(pattern string) *coregex.Regex {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}
