// Package benchreport summarizes google-benchmark JSON results of the
// generated hierarchies.
package benchreport

import (
	"regexp"
	"strings"

	"github.com/example/hiergen/internal/errors"
)

// ErrRunName is wrapped by every run name parse failure.
var ErrRunName = errors.New("unrecognized benchmark run name")

var runNameSep = regexp.MustCompile(`[/_]`)

// RunName is a benchmark run name of the form
// Fixture/<shape>_<direction>_<kind>, e.g.
// InheritanceFixture/deep_fromBase_dynamic_cast. The kind may itself
// contain underscores.
type RunName struct {
	Fixture   string
	Shape     string
	Direction string
	Kind      string
}

// ParseRunName splits s on '/' and '_'. The first three fields are the
// fixture, shape and direction; everything after them is the kind.
func ParseRunName(s string) (RunName, error) {
	parts := runNameSep.Split(s, -1)
	if len(parts) < 4 {
		return RunName{}, errors.Wrapf(ErrRunName, "%q has %d fields, want at least 4", s, len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return RunName{}, errors.Wrapf(ErrRunName, "%q has an empty field at position %d", s, i)
		}
	}
	return RunName{
		Fixture:   parts[0],
		Shape:     parts[1],
		Direction: parts[2],
		Kind:      strings.Join(parts[3:], "_"),
	}, nil
}

// Category is the chart row a run belongs to, "<shape>, <direction>".
func (n RunName) Category() string {
	return n.Shape + ", " + n.Direction
}

func (n RunName) String() string {
	return n.Fixture + "/" + n.Shape + "_" + n.Direction + "_" + n.Kind
}
