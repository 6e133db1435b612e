package aoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"tailscale.com/util/deephash"
)

// SampleMode controls whether documented samples are checked.
type SampleMode int

const (
	// SampleRun checks each part's sample before running it on the real
	// input. A wrong sample answer skips the real run of that part.
	SampleRun SampleMode = iota
	// SampleOnly checks samples and never touches the input or output files.
	// Only failing samples produce a Result.
	SampleOnly
	// SampleSkip ignores samples.
	SampleSkip
)

// Result is the outcome of one part.
type Result struct {
	Part    int
	Output  string // answer rendered with fmt.Sprint
	Elapsed time.Duration
	Err     error
}

// Report is the outcome of one day. Err is set when the input could not
// be read, in which case Results is empty.
type Report struct {
	Day     int
	Results []Result
	Err     error
}

// Harness reads a day's input, runs and times its parts, prints a report
// and writes it to the output directory.
//
// All file access goes through Fs, with InputDir and OutputDir relative
// to it. The zero value of every other field is usable.
type Harness struct {
	Fs        afero.Fs
	InputDir  string // default "input"
	OutputDir string // default "output"

	Out io.Writer   // console; default os.Stdout
	Log *log.Logger // default log.Default()

	Samples SampleMode
	Part    int // 1 or 2 runs only that part; 0 runs both
	Runs    int // times to run each part; the fastest is reported

	st *styles
}

func (h *Harness) out() io.Writer {
	if h.Out == nil {
		return os.Stdout
	}
	return h.Out
}

func (h *Harness) log() *log.Logger {
	if h.Log == nil {
		return log.Default()
	}
	return h.Log
}

func (h *Harness) style() *styles {
	if h.st == nil {
		h.st = newStyles(h.out())
	}
	return h.st
}

func (h *Harness) parts() []int {
	if h.Part == 1 || h.Part == 2 {
		return []int{h.Part}
	}
	return []int{1, 2}
}

// InputPath returns the path of day's input file within Fs.
func (h *Harness) InputPath(day int) string {
	return path.Join(Or(h.InputDir, "input"), fmt.Sprintf("%d.txt", day))
}

// OutputPath returns the path of day's output file within Fs.
func (h *Harness) OutputPath(day int) string {
	return path.Join(Or(h.OutputDir, "output"), fmt.Sprintf("%d.txt", day))
}

// Run executes the given days in ascending order, or every registered day
// if none are given. It fails before running anything if a day is not
// registered.
func (h *Harness) Run(r *Registry, days ...int) ([]Report, error) {
	if len(days) == 0 {
		days = r.Days()
	} else {
		days = slices.Clone(days)
		slices.Sort(days)
		days = slices.Compact(days)
	}
	var todo []Day
	for _, n := range days {
		d, ok := r.Day(n)
		if !ok {
			return nil, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
		}
		todo = append(todo, d)
	}
	reports := make([]Report, 0, len(todo))
	for i, d := range todo {
		if i > 0 {
			fmt.Fprintln(h.out())
		}
		reports = append(reports, h.Execute(d))
	}
	return reports, nil
}

// Execute runs a single day. Failures are reported on the console and in
// the returned Report; none of them abort the process.
func (h *Harness) Execute(d Day) Report {
	out, st := h.out(), h.style()
	rep := Report{Day: d.Num}
	fmt.Fprintf(out, "Executing solution for day %d... ", d.Num)

	if h.Samples == SampleOnly {
		fmt.Fprintln(out)
		for _, part := range h.parts() {
			if err := h.checkSample(d, part); err != nil {
				rep.Results = append(rep.Results, Result{Part: part, Err: err})
			}
		}
		return rep
	}

	input, err := h.readInput(d.Num)
	if err != nil {
		rep.Err = err
		fmt.Fprintln(out, st.fail.Render("❌ Failed."), st.dim.Render("Could not read input file:"), st.dim.Render(err.Error()))
	} else {
		fmt.Fprintln(out, st.pass.Render("✅ Passed."))
		for _, part := range h.parts() {
			rep.Results = append(rep.Results, h.runPart(d, part, input))
		}
	}

	h.printReport(rep)
	if err := h.writeReport(rep); err != nil {
		fmt.Fprintln(out, st.warn.Render("❗ Warning."), st.dim.Render("Could not write output file:"), err)
	}
	return rep
}

func (h *Harness) readInput(day int) (string, error) {
	p := h.InputPath(day)
	h.log().Debug("reading input", "day", day, "path", p)
	b, err := afero.ReadFile(h.Fs, p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrInputUnavailable, p)
	}
	return string(b), nil
}

func (h *Harness) writeReport(rep Report) error {
	p := h.OutputPath(rep.Day)
	if err := h.Fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return err
	}
	h.log().Debug("writing output", "day", rep.Day, "path", p)
	return afero.WriteFile(h.Fs, p, formatReport(rep), 0o644)
}

func (h *Harness) runPart(d Day, part int, input string) Result {
	res := Result{Part: part}
	if h.Samples == SampleRun {
		if err := h.checkSample(d, part); err != nil {
			res.Err = err
			return res
		}
	}

	var first deephash.Sum
	for i := range max(h.Runs, 1) {
		got, elapsed, err := timed(func() any { return d.Solve(part, input) })
		if i == 0 || elapsed < res.Elapsed {
			res.Elapsed = elapsed
		}
		if err != nil {
			res.Err = err
			h.log().Error("part failed", "day", d.Num, "part", part, "err", err)
			return res
		}
		sum := deephash.Hash(&got)
		if i == 0 {
			first = sum
			res.Output = fmt.Sprint(got)
		} else if sum != first {
			res.Err = fmt.Errorf("run %d got %v, run 1 got %s: %w", i+1, got, res.Output, ErrNondeterministic)
			return res
		}
	}
	h.log().Debug("solved", "day", d.Num, "part", part, "elapsed", res.Elapsed)
	return res
}

// checkSample runs part on its documented sample, if there is one.
func (h *Harness) checkSample(d Day, part int) error {
	s, ok := d.Sample(part)
	if !ok {
		return nil
	}
	out, st := h.out(), h.style()
	got, elapsed, err := timed(func() any { return d.Solve(part, s.Input) })
	if err != nil {
		fmt.Fprintf(out, "part %d sample: %s %v\n", part, st.fail.Render("❌"), err)
		return fmt.Errorf("part %d: %w: %w", part, ErrSampleMismatch, err)
	}
	if g := fmt.Sprint(got); g != s.Want {
		fmt.Fprintf(out, "part %d sample: %s %s; want %s\n", part, g, st.fail.Render("❌"), s.Want)
		return fmt.Errorf("part %d: got %s, want %s: %w", part, g, s.Want, ErrSampleMismatch)
	}
	fmt.Fprintf(out, "part %d sample: %v %s (%v)\n", part, got, st.pass.Render("✅"), elapsed.Round(time.Microsecond))
	return nil
}

// timed calls f and measures how long it took. A panic in f is returned as
// an error wrapping ErrSolverFault.
func timed(f func() any) (v any, elapsed time.Duration, err error) {
	t0 := time.Now()
	defer func() {
		elapsed = time.Since(t0)
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrSolverFault, e)
			} else {
				err = fmt.Errorf("%w: %v", ErrSolverFault, r)
			}
		}
	}()
	return f(), 0, nil
}

// Err joins the errors recorded in reports.
func Err(reports []Report) error {
	var errs []error
	for _, r := range reports {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("day %d: %w", r.Day, r.Err))
		}
		for _, res := range r.Results {
			if res.Err != nil {
				errs = append(errs, fmt.Errorf("day %d part %d: %w", r.Day, res.Part, res.Err))
			}
		}
	}
	return errors.Join(errs...)
}
