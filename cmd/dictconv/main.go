package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ieee0824/oto2seg/lexicon"
)

func main() {
	noBuiltin := flag.Bool("no-builtin", false, "do not start from the built-in table")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dictconv [options] [dict.tsv...]")
		fmt.Fprintln(os.Stderr, "  Merges phoneme dictionaries into one oto2seg dictionary TSV.")
		fmt.Fprintln(os.Stderr, "  The built-in table comes first; later files add units.")
		fmt.Fprintln(os.Stderr, "  Supports glob patterns: dictconv extra/*.tsv")
		fmt.Fprintln(os.Stderr, "  Output goes to stdout.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Expand glob patterns
	var files []string
	for _, arg := range flag.Args() {
		matches, err := filepath.Glob(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad pattern %q: %v\n", arg, err)
			os.Exit(1)
		}
		if matches == nil {
			// No glob match, treat as literal path
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}
	if *noBuiltin && len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	seen := make(map[string]bool) // "kana\tromaji\tatoms" -> true
	var units []lexicon.Unit
	merge := func(d *lexicon.Dictionary) int {
		n := 0
		for _, u := range d.Units() {
			key := u.Kana + "\t" + u.Romaji + "\t" + lexicon.Join(u.Atoms)
			if seen[key] {
				continue
			}
			seen[key] = true
			units = append(units, u)
			n++
		}
		return n
	}

	if !*noBuiltin {
		merge(lexicon.Default())
	}
	for _, path := range files {
		d, err := lexicon.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", path, err)
			continue
		}
		n := merge(d)
		fmt.Fprintf(os.Stderr, "%s: %d new units\n", path, n)
	}

	if err := lexicon.New(units...).Write(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d units (%s)\n", len(units), strings.Join(files, ", "))
}
