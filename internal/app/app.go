package app

import (
	"fmt"
	"io"

	"github.com/multimediallc/advent-2018/internal/config"
	"github.com/multimediallc/advent-2018/internal/input"
	"github.com/multimediallc/advent-2018/pkg/fabric"
)

// Answer holds both parts of one solved day
type Answer struct {
	Day   int    `json:"day"`
	Input string `json:"input"`
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
}

// OutputData holds the data that will be written to the output file
type OutputData struct {
	Answers []Answer `json:"answers"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
}

func (od *OutputData) UpdateOutputData(success bool, message string) {
	od.Success = success
	od.Message = message
}

// Config holds the application configuration
type Config struct {
	Dir           string
	Day           int
	Input         string
	Verbose       bool
	InfoBuffer    io.Writer
	WarningBuffer io.Writer
}

// App represents the application with its dependencies
type App struct {
	Conf    *config.Config
	config  *Config
	grammar *fabric.Grammar
}

// New creates a new App instance with the given configuration
func New(cfg Config) (*App, error) {
	if cfg.InfoBuffer == nil {
		cfg.InfoBuffer = io.Discard
	}
	if cfg.WarningBuffer == nil {
		cfg.WarningBuffer = io.Discard
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	app := &App{
		config:  &cfg,
		grammar: fabric.NewGrammar(),
	}

	conf, err := config.ReadConfig(cfg.Dir)
	if err != nil {
		app.printWarn("Error reading %s - using default config: %v\n", config.FileName, err)
	}
	app.Conf = conf
	return app, nil
}

func (a *App) printDebug(format string, args ...interface{}) {
	if a.config.Verbose {
		_, _ = fmt.Fprintf(a.config.InfoBuffer, format, args...)
	}
}

func (a *App) printWarn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.WarningBuffer, format, args...)
}

// InputPath resolves where the input for day is read from.
func (a *App) InputPath(day int, path string) string {
	if path != "" {
		return path
	}
	return input.DefaultPath(a.Conf.InputDir, day)
}

// Run solves the configured day
func (a *App) Run() (*OutputData, error) {
	outputData := &OutputData{Answers: []Answer{}}

	answer, err := a.Solve(a.config.Day, a.config.Input)
	if err != nil {
		outputData.UpdateOutputData(false, err.Error())
		return outputData, err
	}
	outputData.Answers = append(outputData.Answers, answer)
	outputData.UpdateOutputData(true, fmt.Sprintf("Day %d solved", answer.Day))
	return outputData, nil
}

// Solve reads the input for day and answers both parts
func (a *App) Solve(day int, path string) (Answer, error) {
	if _, err := solverFor(day); err != nil {
		return Answer{}, err
	}
	path = a.InputPath(day, path)
	a.printDebug("Day %d: reading %s\n", day, path)
	lines, err := input.ReadLines(path)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", day, err)
	}
	answer, err := a.SolveLines(day, lines)
	answer.Input = path
	return answer, err
}

// SolveLines answers both parts of day from already loaded lines
func (a *App) SolveLines(day int, lines []string) (Answer, error) {
	s, err := solverFor(day)
	if err != nil {
		return Answer{}, err
	}
	answer, err := s(a, lines)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", day, err)
	}
	answer.Day = day
	a.printDebug("Day %d: part 1 = %s, part 2 = %s\n", day, answer.Part1, answer.Part2)
	return answer, nil
}

// Batch solves every input discovered under the configured input dir.
// Inputs for days without a solver are skipped with a warning; the first
// failing input stops the batch.
func (a *App) Batch() (*OutputData, error) {
	outputData := &OutputData{Answers: []Answer{}}

	files, err := input.Discover(a.Conf.InputDir, a.Conf.InputPattern)
	if err != nil {
		outputData.UpdateOutputData(false, err.Error())
		return outputData, err
	}
	a.printDebug("Discovered %d inputs under %s\n", len(files), a.Conf.InputDir)

	for _, file := range files {
		if _, ok := solvers[file.Day]; !ok {
			a.printWarn("WARNING: Skipping %s: day %d is not implemented yet\n", file.Path, file.Day)
			continue
		}
		answer, err := a.Solve(file.Day, file.Path)
		if err != nil {
			outputData.UpdateOutputData(false, err.Error())
			return outputData, err
		}
		outputData.Answers = append(outputData.Answers, answer)
	}
	outputData.UpdateOutputData(true, fmt.Sprintf("%d inputs solved", len(outputData.Answers)))
	return outputData, nil
}

// Verify checks a claim file and reports every malformed line
func (a *App) Verify(path string) error {
	lines, err := input.ReadLines(a.InputPath(3, path))
	if err != nil {
		return err
	}
	return a.grammar.Validate(lines, 1)
}
