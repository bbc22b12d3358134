package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/multimediallc/advent-2018/internal/app"
	f "github.com/multimediallc/advent-2018/pkg/functional"
	"github.com/olekukonko/tablewriter"
)

type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatOneLine OutputFormat = "one-line"
	FormatJSON    OutputFormat = "json"
	FormatTable   OutputFormat = "table"
)

var allowedFormats = []string{string(FormatDefault), string(FormatOneLine), string(FormatJSON), string(FormatTable)}

func validateFormat(format string) (OutputFormat, error) {
	if !slices.Contains(allowedFormats, format) {
		return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
	}
	return OutputFormat(format), nil
}

func writeAnswers(w io.Writer, answers []app.Answer, format OutputFormat) error {
	switch format {
	case FormatJSON:
		jsonBytes, err := json.Marshal(answers)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	case FormatOneLine:
		lines := f.Map(answers, func(a app.Answer) string {
			return fmt.Sprintf("Day %d: %s, %s", a.Day, a.Part1, a.Part2)
		})
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	case FormatTable:
		table := tablewriter.NewWriter(w)
		table.Header("Day", "Part 1", "Part 2", "Input")
		rows := f.Map(answers, func(a app.Answer) []string {
			return []string{strconv.Itoa(a.Day), a.Part1, a.Part2, a.Input}
		})
		if err := table.Bulk(rows); err != nil {
			return err
		}
		return table.Render()
	default:
		for i, a := range answers {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "Day %d:\nPart 1: %s\nPart 2: %s\n", a.Day, a.Part1, a.Part2); err != nil {
				return err
			}
		}
		return nil
	}
}
