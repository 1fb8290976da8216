package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/ratmath"
)

func main() {
	log.SetFlags(0)
	var (
		inname          string
		nl, echo, mixed bool
		maxexp          int64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&mixed, "mixed", false, "print results as mixed numbers")
	flag.Int64Var(&maxexp, "maxexp", -1, "largest allowed exponent magnitude (-1 for no limit)")
	flag.Parse()

	var opts []ratmath.ParseOption
	if maxexp >= 0 {
		opts = append(opts, ratmath.MaxExponent(maxexp))
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := split(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	for _, src := range srcs {
		a, err := ratmath.Parse(src, opts...)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval()
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(format(r, mixed))
	}
}

// format prints a point as its single value and any other interval as
// low:high.
func format(r ratmath.Interval, mixed bool) string {
	switch {
	case r.IsPoint() && mixed:
		return r.Low().MixedString()
	case r.IsPoint():
		return r.Low().String()
	case mixed:
		return r.MixedString()
	default:
		return r.String()
	}
}

// split reads all of in as one expression, or as one expression per
// non-blank line if lines is true.
func split(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		r = append(r, sc.Text())
	}
	return r, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
