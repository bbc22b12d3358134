package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/multimediallc/advent-2018/pkg/boxid"
	"github.com/multimediallc/advent-2018/pkg/fabric"
	"github.com/multimediallc/advent-2018/pkg/frequency"
	f "github.com/multimediallc/advent-2018/pkg/functional"
)

var ErrNotImplemented = errors.New("day not implemented")

// solver answers both parts of one day's puzzle from its input lines.
type solver func(a *App, lines []string) (Answer, error)

var solvers = map[int]solver{
	1: solveFrequency,
	2: solveBoxIDs,
	3: solveFabric,
}

func solverFor(day int) (solver, error) {
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("day should be an integer between 1 and 25, got %d", day)
	}
	s, ok := solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d is not implemented yet", ErrNotImplemented, day)
	}
	return s, nil
}

func solveFrequency(a *App, lines []string) (Answer, error) {
	changes, err := frequency.Parse(lines)
	if err != nil {
		return Answer{}, err
	}
	repeat, err := frequency.FirstRepeat(changes, a.Conf.Frequency.MaxPasses)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Part1: strconv.Itoa(frequency.Sum(changes)),
		Part2: strconv.Itoa(repeat),
	}, nil
}

func solveBoxIDs(a *App, lines []string) (Answer, error) {
	ids := f.Map(lines, strings.TrimSpace)
	ids = f.Filtered(ids, func(id string) bool { return id != "" })
	a.printDebug("Box ids: %d\n", len(ids))
	common, err := boxid.CommonLetters(ids)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Part1: strconv.Itoa(boxid.Checksum(ids)),
		Part2: common,
	}, nil
}

func solveFabric(a *App, lines []string) (Answer, error) {
	claims, err := a.grammar.ParseAll(lines)
	if err != nil {
		return Answer{}, err
	}
	fab, err := fabric.RasterizeLimited(claims, a.Conf.Fabric.Workers, a.Conf.Fabric.MaxCells)
	if err != nil {
		return Answer{}, err
	}
	a.printDebug("Claims: %d on a %dx%d fabric (%d workers)\n", len(claims), fab.Width(), fab.Height(), a.Conf.Fabric.Workers)

	overlaps := fabric.CountOverlaps(fab)
	exclusive, err := fabric.FindExclusive(claims, fab)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Part1: strconv.Itoa(overlaps),
		Part2: strconv.Itoa(exclusive.ID),
	}, nil
}
