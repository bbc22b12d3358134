package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/multimediallc/advent-2018/internal/app"
	"github.com/urfave/cli/v2"
)

func main() {
	var root string
	var verbose bool
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Print version",
	}
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Println(cCtx.App.Version)
	}
	rootFlag := &cli.StringFlag{
		Name:        "root",
		Aliases:     []string{"r"},
		Value:       "./",
		Usage:       "Directory containing advent.toml",
		Destination: &root,
	}
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Value:       false,
		Usage:       "Verbose output",
		Destination: &verbose,
	}
	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "default",
		Usage:   "Output format.  Allowed values are: default, one-line, json, and table",
	}
	cliApp := &cli.App{
		Name:        "advent-cli",
		Usage:       "CLI tool for solving Advent of Code 2018 puzzles",
		Version:     "v0.1.0.dev",
		Description: "",
		Commands: []*cli.Command{
			{
				Name:        "solve",
				Aliases:     []string{"s"},
				Usage:       "Solve both parts of one day",
				UsageText:   "advent-cli solve [options] <day>",
				Description: "Solve a day's puzzle. Input is read from --input, from stdin when piped, or from <input_dir>/dayN.txt.",
				Flags: []cli.Flag{
					rootFlag,
					verboseFlag,
					formatFlag,
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "",
						Usage:   "Path to the puzzle input, - for stdin",
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() == 0 {
						return fmt.Errorf("day is required")
					}
					day, err := strconv.Atoi(cCtx.Args().First())
					if err != nil {
						return fmt.Errorf("day should be an integer between 1 and 25: %s", cCtx.Args().First())
					}
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					return solveDay(root, day, resolveInput(cCtx.String("input")), format, verbose)
				},
			},
			{
				Name:        "verify",
				Aliases:     []string{"c"},
				Usage:       "Verify a fabric claim file",
				UsageText:   "advent-cli verify [options] [file]",
				Description: "Check every line of a claim file and report all malformed lines. Defaults to <input_dir>/day3.txt.",
				Flags: []cli.Flag{
					rootFlag,
				},
				Action: func(cCtx *cli.Context) error {
					target := ""
					if cCtx.NArg() > 0 {
						target = cCtx.Args().First()
					}
					return verifyClaims(root, resolveInput(target))
				},
			},
			{
				Name:        "batch",
				Aliases:     []string{"b"},
				Usage:       "Solve every input found in the input directory",
				UsageText:   "advent-cli batch [options]",
				Description: "Walk input_dir, pick the files matching input_pattern and solve each one.",
				Flags: []cli.Flag{
					rootFlag,
					verboseFlag,
					formatFlag,
				},
				Action: func(cCtx *cli.Context) error {
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					return solveBatch(root, format, verbose)
				},
			},
		},
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(root string, day int, inputPath string, verbose bool) (*app.App, *bytes.Buffer, *bytes.Buffer, error) {
	infoBuffer := bytes.NewBuffer([]byte{})
	warningBuffer := bytes.NewBuffer([]byte{})
	a, err := app.New(app.Config{
		Dir:           root,
		Day:           day,
		Input:         inputPath,
		Verbose:       verbose,
		InfoBuffer:    infoBuffer,
		WarningBuffer: warningBuffer,
	})
	return a, infoBuffer, warningBuffer, err
}

func flushBuffers(infoBuffer, warningBuffer *bytes.Buffer) {
	_, _ = warningBuffer.WriteTo(os.Stderr)
	_, _ = infoBuffer.WriteTo(os.Stderr)
}

func solveDay(root string, day int, inputPath string, format OutputFormat, verbose bool) error {
	a, infoBuffer, warningBuffer, err := newApp(root, day, inputPath, verbose)
	if err != nil {
		return err
	}
	defer flushBuffers(infoBuffer, warningBuffer)

	out, err := a.Run()
	if err != nil {
		return err
	}
	return writeAnswers(os.Stdout, out.Answers, format)
}

func solveBatch(root string, format OutputFormat, verbose bool) error {
	a, infoBuffer, warningBuffer, err := newApp(root, 0, "", verbose)
	if err != nil {
		return err
	}
	defer flushBuffers(infoBuffer, warningBuffer)

	out, err := a.Batch()
	if err != nil {
		return err
	}
	return writeAnswers(os.Stdout, out.Answers, format)
}

func verifyClaims(root string, target string) error {
	a, infoBuffer, warningBuffer, err := newApp(root, 3, target, false)
	if err != nil {
		return err
	}
	defer flushBuffers(infoBuffer, warningBuffer)

	if err := a.Verify(target); err != nil {
		return err
	}
	fmt.Printf("%s: all claims valid\n", a.InputPath(3, target))
	return nil
}
