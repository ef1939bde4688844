//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/gvallee/go_util/pkg/util"
	"github.com/gvallee/performance_module/tools/internal/pkg/report"
	"github.com/gvallee/performance_module/tools/internal/pkg/snippet"
	"github.com/gvallee/performance_module/tools/pkg/benchmark"
)

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cmdName := filepath.Base(args[0])
	flags := flag.NewFlagSet(cmdName, flag.ContinueOnError)
	flags.SetOutput(stderr)

	verbose := flags.Bool("v", false, "Enable verbose mode")
	code := flags.String("snippet", snippet.Default, "Code snippet to benchmark")
	codeFile := flags.String("snippet-file", "", "File from which the code snippet to benchmark is read (overrides -snippet)")
	baseline := flags.Float64("baseline", 0, "Execution time in seconds against which the measurement is compared")
	format := flags.String("format", report.FormatText, "Output format: text, markdown or html")

	err := flags.Parse(args[1:])
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		return 2
	}

	compare := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "baseline" {
			compare = true
		}
	})

	if *verbose {
		logFile := util.OpenLogFile("performance_module", cmdName)
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(stderr, logFile))
	} else {
		log.SetOutput(ioutil.Discard)
	}

	if !report.IsValidFormat(*format) {
		fmt.Fprintf(stderr, "unsupported format: %s\n", *format)
		return 1
	}

	s := *code
	if *codeFile != "" {
		s, err = snippet.Load(*codeFile)
		if err != nil {
			fmt.Fprintf(stderr, "unable to load snippet: %s\n", err)
			return 1
		}
	}

	r := benchmark.Run(s)

	var c *benchmark.Comparison
	if compare {
		comparison, err := benchmark.Compare(*baseline, r.Elapsed)
		if err != nil {
			fmt.Fprintf(stderr, "unable to compare with baseline: %s\n", err)
			return 1
		}
		c = &comparison
	}

	out, err := report.Generate(*format, r, c)
	if err != nil {
		fmt.Fprintf(stderr, "unable to generate report: %s\n", err)
		return 1
	}
	fmt.Fprint(stdout, out)
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
