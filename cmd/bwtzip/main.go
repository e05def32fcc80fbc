// Command bwtzip is the command-line front-end for the BWT+MTF+LZW
// compression pipeline implemented by package pipeline.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bbeck/bwtzip/internal/bench"
	"github.com/bbeck/bwtzip/pipeline"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bwtzip: ")

	var (
		compress   = flag.Bool("c", false, "compress IN to OUT")
		decompress = flag.Bool("d", false, "decompress IN to OUT")
		force      = flag.Bool("f", false, "overwrite OUT without prompting")
		keepInter  = flag.Bool("keep-intermediates", false, "retain each stage's intermediate file, named OUT.<stage>")
		runBench   = flag.String("bench", "", "instead of running the pipeline, compare IN against the named codec (bwtzip,flate,zstd,xz) and report ratio")
	)
	flag.BoolVar(compress, "compress", false, "alias for -c")
	flag.BoolVar(decompress, "decompress", false, "alias for -d")
	flag.Parse()

	if *runBench != "" {
		if flag.NArg() != 1 {
			log.Fatal("-bench requires exactly one input file")
		}
		runBenchmark(flag.Arg(0), *runBench)
		return
	}

	if *compress == *decompress {
		log.Fatal("specify exactly one of -c/--compress or -d/--decompress")
	}
	if flag.NArg() != 2 {
		log.Fatal("usage: bwtzip (-c|-d) [-f] [-keep-intermediates] IN OUT")
	}
	in, out := flag.Arg(0), flag.Arg(1)

	if _, err := os.Stat(in); err != nil {
		log.Fatalf("cannot read %s: %v", in, err)
	}
	if !*force && !confirmOverwrite(out) {
		log.Fatalf("refusing to overwrite %s", out)
	}

	var pathFor pipeline.PathFunc
	if *keepInter {
		pathFor = func(stage pipeline.StageName) string {
			return out + "." + string(stage)
		}
	}

	if *compress {
		if err := pipeline.CompressTo(in, out, pathFor); err != nil {
			log.Fatalf("compress: %v", err)
		}
	} else {
		if err := pipeline.DecompressFrom(in, out, pathFor); err != nil {
			log.Fatalf("decompress: %v", err)
		}
	}

	reportSizes(in, out, *compress)
}

// confirmOverwrite returns true if out does not exist, or the user
// confirms overwriting it on stdin.
func confirmOverwrite(out string) bool {
	if _, err := os.Stat(out); os.IsNotExist(err) {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s already exists; overwrite? [y/N] ", out)
	resp, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}

func reportSizes(in, out string, compressing bool) {
	inInfo, err1 := os.Stat(in)
	outInfo, err2 := os.Stat(out)
	if err1 != nil || err2 != nil {
		return
	}
	inSize, outSize := inInfo.Size(), outInfo.Size()
	if compressing {
		ratio := 1.0
		if outSize > 0 {
			ratio = float64(inSize) / float64(outSize)
		}
		fmt.Printf("%s: %d -> %d bytes (%.2fx)\n", filepath.Base(in), inSize, outSize, ratio)
	} else {
		fmt.Printf("%s: %d -> %d bytes\n", filepath.Base(in), inSize, outSize)
	}
}

func runBenchmark(path, codec string) {
	c, ok := bench.Lookup(codec)
	if !ok {
		log.Fatalf("unknown codec %q for -bench", codec)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}
	compressed, err := c.Compress(input)
	if err != nil {
		log.Fatalf("%s compress: %v", codec, err)
	}
	output, err := c.Decompress(compressed)
	if err != nil {
		log.Fatalf("%s decompress: %v", codec, err)
	}
	if string(output) != string(input) {
		log.Fatalf("%s: round-trip mismatch", codec)
	}
	ratio := 1.0
	if len(compressed) > 0 {
		ratio = float64(len(input)) / float64(len(compressed))
	}
	fmt.Printf("%s on %s: %d -> %d bytes (%.2fx) [%s]\n",
		codec, filepath.Base(path), len(input), len(compressed), ratio, bench.CPUSummary())
}
