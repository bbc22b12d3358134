package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/multimediallc/advent-2018/internal/app"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func ignoreError[V any, E error](res V, _ E) V {
	return res
}

var (
	WarningBuffer = bytes.NewBuffer([]byte{})
	InfoBuffer    = bytes.NewBuffer([]byte{})
)

var (
	day     = flag.Int("day", ignoreError(strconv.Atoi(getEnv("INPUT_DAY", ""))), "The day of the month: 1-25")
	input   = flag.String("input", getEnv("INPUT_PATH", ""), "Location of a file with input data")
	dir     = flag.String("dir", getEnv("INPUT_DIR", "."), "Directory containing advent.toml")
	output  = flag.String("output", getEnv("OUTPUT_PATH", ""), "Write the answers as JSON to this file")
	verbose = flag.Bool("v", ignoreError(strconv.ParseBool(getEnv("INPUT_VERBOSE", "0"))), "Verbose output")
)

func main() {
	flag.Parse()
	if err := run(*day, *input, *dir, *output, *verbose, os.Stdout); err != nil {
		errorAndExit("Error: %v\n", err)
	}
	flushBuffers(*verbose)
}

func run(day int, inputPath, configDir, outputPath string, verbose bool, stdout io.Writer) error {
	if day == 0 {
		return fmt.Errorf("required flags or environment variables not set: [day]")
	}

	a, err := app.New(app.Config{
		Dir:           configDir,
		Day:           day,
		Input:         inputPath,
		Verbose:       verbose,
		InfoBuffer:    InfoBuffer,
		WarningBuffer: WarningBuffer,
	})
	if err != nil {
		return err
	}

	outputData, err := a.Run()
	if outputPath != "" {
		if writeErr := writeOutput(outputPath, outputData); writeErr != nil {
			_, _ = fmt.Fprintf(WarningBuffer, "WARNING: Error writing output: %v\n", writeErr)
		}
	}
	if err != nil {
		return err
	}

	for _, answer := range outputData.Answers {
		_, _ = fmt.Fprintf(stdout, "Day %d:\nPart 1: %s\nPart 2: %s\n", answer.Day, answer.Part1, answer.Part2)
	}
	return nil
}

func writeOutput(path string, outputData *app.OutputData) error {
	jsonBytes, err := json.Marshal(outputData)
	if err != nil {
		return fmt.Errorf("error marshaling output data: %w", err)
	}
	return os.WriteFile(path, jsonBytes, 0644)
}

func flushBuffers(verbose bool) {
	_, err := WarningBuffer.WriteTo(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing warning buffer: %v\n", err)
	}
	if verbose {
		_, err := InfoBuffer.WriteTo(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing info buffer: %v\n", err)
		}
	}
}

func errorAndExit(format string, args ...interface{}) {
	flushBuffers(*verbose)
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
