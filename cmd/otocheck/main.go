package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/audio"
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/oto"
)

func main() {
	encoding := flag.String("encoding", string(oto.ShiftJIS), "index encoding (shift-jis or utf-8)")
	dictPath := flag.String("dict", "", "phoneme dictionary TSV (default: built-in)")
	failedOnly := flag.Bool("failed", false, "print only aliases that cannot be classified")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: otocheck [options] <oto.ini>")
		fmt.Fprintln(os.Stderr, "  Classifies every alias in a pronunciation index without writing segments.")
		fmt.Fprintln(os.Stderr, "  Prints line, clip, alias, type and atoms (or the error) as TSV.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	dict := lexicon.Default()
	if *dictPath != "" {
		d, err := lexicon.LoadFile(*dictPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		dict = d
	}

	idx, err := oto.ReadFile(flag.Arg(0), oto.Options{
		Encoding: oto.Encoding(*encoding),
		Prober:   oto.ProbeFunc(audio.Probe),
		Logger:   zerolog.Nop(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, p := range idx.Problems {
		fmt.Printf("%d\t%s\t\terror\t%v\n", p.Line, p.Clip, p.Err)
	}

	counts := make(map[alias.Type]int)
	var ok, failed int
	for _, c := range idx.Clips {
		for _, e := range c.Entries {
			cl, err := alias.Classify(dict, e.Alias)
			if err != nil {
				failed++
				fmt.Printf("%d\t%s\t%s\terror\t%v\n", e.Line, e.Clip, e.Alias, err)
				continue
			}
			ok++
			counts[cl.Type]++
			if *failedOnly {
				continue
			}
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", e.Line, e.Clip, e.Alias, cl.Type, lexicon.Join(cl.Atoms))
		}
	}

	fmt.Fprintf(os.Stderr, "Initial mode: %s\n", oto.DetectInitialMode(idx))
	fmt.Fprintf(os.Stderr, "Classified %d, failed %d, skipped lines %d\n", ok, failed, len(idx.Problems))
	for _, t := range []alias.Type{alias.RCV, alias.RV, alias.RC, alias.VR, alias.VV, alias.VC, alias.CV} {
		if counts[t] > 0 {
			fmt.Fprintf(os.Stderr, "  %-3s %d\n", t, counts[t])
		}
	}
	if failed > 0 {
		os.Exit(2)
	}
}
