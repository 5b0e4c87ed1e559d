// lpdump reads an LP file and prints the parsed model, adapted from the
// lporun demonstration executable this package's parser was built
// alongside: lporun offered an interactive menu of presolve/solve
// options that are out of scope here, so lpdump offers the one
// operation that is in scope - read and display.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-opt/lpreader"
)

func main() {
	gzipped := flag.Bool("gzip", false, "treat the input file as gzip-compressed")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: lpdump [-gzip] <file.lp>\n")
		os.Exit(2)
	}
	path := flag.Arg(0)

	var model *lpreader.Model
	var err error
	if *gzipped {
		model, err = lpreader.ReadGzipFile(path)
	} else {
		model, err = lpreader.ReadFile(path)
	}
	if err != nil {
		if pe, ok := lpreader.AsParseError(err); ok {
			fmt.Fprintf(os.Stderr, "lpdump: %s\n", pe.Error())
		} else {
			fmt.Fprintf(os.Stderr, "lpdump: %+v\n", err)
		}
		os.Exit(1)
	}

	if err := lpreader.PrintModel(os.Stdout, model); err != nil {
		fmt.Fprintf(os.Stderr, "lpdump: failed to print model: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	stats := lpreader.GetStatistics(model)
	if err := lpreader.PrintStatistics(os.Stdout, stats); err != nil {
		fmt.Fprintf(os.Stderr, "lpdump: failed to print statistics: %v\n", err)
		os.Exit(1)
	}
}
