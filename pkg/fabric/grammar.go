package fabric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const claimPattern = `^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`

// Grammar turns claim lines into Claims. A Grammar is built once with
// NewGrammar and handed to whatever needs to parse; it is safe for concurrent
// use.
//
// The accepted shape is exact:
//
//	#<id> @ <x>,<y>: <width>x<height>
//
// e.g. `#2 @ 32,10: 14x7`. Leading or trailing whitespace, signs, and extra
// spacing are rejected rather than repaired.
type Grammar struct {
	re *regexp.Regexp
}

func NewGrammar() *Grammar {
	return &Grammar{re: regexp.MustCompile(claimPattern)}
}

// Parse converts one line into a Claim. On failure the returned Claim is the
// zero value and the error is a KindParse *Error carrying the line.
func (g *Grammar) Parse(line string) (Claim, error) {
	m := g.re.FindStringSubmatch(line)
	if m == nil {
		return Claim{}, parseError(line, "expected `#<id> @ <x>,<y>: <width>x<height>`", nil)
	}

	var fields [5]int
	names := [5]string{"id", "x", "y", "width", "height"}
	for i := range fields {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Claim{}, parseError(line, fmt.Sprintf("field %s", names[i]), err)
		}
		fields[i] = n
	}

	c := Claim{ID: fields[0], X: fields[1], Y: fields[2], Width: fields[3], Height: fields[4]}
	if c.Width == 0 || c.Height == 0 {
		return Claim{}, parseError(line, "claim must have a positive width and height", nil)
	}
	// Right/Bottom must stay addressable.
	if c.X > maxInt-c.Width || c.Y > maxInt-c.Height {
		return Claim{}, parseError(line, "claim extends past the addressable fabric", strconv.ErrRange)
	}
	return c, nil
}

// ParseAll parses every non-blank line. It is all or nothing: the first bad
// line aborts the parse and no claims are returned.
func (g *Grammar) ParseAll(lines []string) ([]Claim, error) {
	claims := make([]Claim, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := g.Parse(line)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// Validate reports every bad line at once instead of stopping at the first.
// lineOffset is added to the 0-based index when numbering lines.
func (g *Grammar) Validate(lines []string, lineOffset int) error {
	var result *multierror.Error
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := g.Parse(line); err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", i+lineOffset, err))
		}
	}
	return result.ErrorOrNil()
}
