// Package aoc runs Advent of Code solutions: it holds the registry of
// day solvers, the harness that times and reports them, and a few helpers
// the solvers share.
package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var (
	// ErrInputUnavailable is returned when a day's input file is missing,
	// unreadable or not valid UTF-8.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrSolverFault wraps a panic raised inside a solving function.
	ErrSolverFault = errors.New("solver fault")
	// ErrSampleMismatch is recorded for a part whose sample answer was wrong.
	ErrSampleMismatch = errors.New("sample mismatch")
	// ErrNondeterministic is recorded when repeated runs of a part disagree.
	ErrNondeterministic = errors.New("answers differ between runs")
	// ErrUnknownDay is returned when a day has no registered solver.
	ErrUnknownDay = errors.New("unknown day")
)

// Solver solves both parts of one day. Both parts get the same input and
// must not depend on each other. The answer is rendered with fmt.Sprint.
//
// A solver signals a broken internal invariant by panicking; the harness
// confines that to the part that raised it.
type Solver[T any] interface {
	Part1(input string) T
	Part2(input string) T
}

// Sample is an example input with its expected answer.
type Sample struct {
	Input string
	Want  string
}

// Day is a registered solver with its answer type erased.
type Day struct {
	Num  int
	Name string // solver type name, e.g. "Trebuchet"

	parts   [2]func(string) any
	samples [2]*Sample
}

// Solve runs part (1 or 2) on input.
func (d Day) Solve(part int, input string) any {
	return d.parts[part-1](input)
}

// Sample returns the sample for part, if its method documents one.
func (d Day) Sample(part int) (Sample, bool) {
	if s := d.samples[part-1]; s != nil {
		return *s, true
	}
	return Sample{}, false
}

// Registry maps day numbers to solvers.
type Registry struct {
	days    map[int]Day
	samples map[string]Sample // "Type.Method" -> sample
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		days:    make(map[int]Day),
		samples: make(map[string]Sample),
	}
}

// Register adds s as the solver for day. It panics if day is not positive
// or already registered.
func Register[T any](r *Registry, day int, s Solver[T]) {
	if day <= 0 {
		panic(fmt.Sprintf("aoc: bad day %d", day))
	}
	if d, ok := r.days[day]; ok {
		panic(fmt.Sprintf("aoc: day %d already registered to %s", day, d.Name))
	}
	rt := reflect.TypeOf(s)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	r.days[day] = Day{
		Num:  day,
		Name: rt.Name(),
		parts: [2]func(string) any{
			func(in string) any { return s.Part1(in) },
			func(in string) any { return s.Part2(in) },
		},
	}
}

// Day returns the solver registered for day n.
func (r *Registry) Day(n int) (Day, bool) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, false
	}
	for i, m := range []string{"Part1", "Part2"} {
		if s, ok := r.samples[d.Name+"."+m]; ok {
			d.samples[i] = &s
		}
	}
	return d, true
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

// AddSamples records the samples documented in the Go source src.
//
// A sample is a comment on a function or method of the form
//
//	/*
//	want=142
//
//	input line 1
//	input line 2
//	*/
//
// A sample without input lines reuses the previous sample's input.
func (r *Registry) AddSamples(src []byte) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	for k, v := range samples {
		r.samples[k] = v
	}
	return nil
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

func extractSamples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.Input = Or(s.Input, lastInput)
			samples[funcKey(fd)] = s
			lastInput = s.Input
			break
		}
	}
	return samples, nil
}

// funcKey returns "Recv.Name" for methods and "Name" for functions.
func funcKey(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	typ := fd.Recv.List[0].Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}
	if id, ok := typ.(*ast.Ident); ok {
		return id.Name + "." + fd.Name.Name
	}
	return fd.Name.Name
}

// Or returns the first non-zero value in list.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
