package aoc

import (
	"reflect"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    Sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: Sample{
				Want: "1",
				Input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: Sample{
				Want: "1234",
				Input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=281`,
			want: Sample{
				Want: "281",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v", tt.comment, got, ok, tt.want)
		}
	}

	if _, ok := parseSample("// Part1 solves the first half."); ok {
		t.Error("parseSample matched a comment with no want= line")
	}
}

const sampleSrc = `package days

type Foo struct{}

/*
want=3

a
b
*/
func (Foo) Part1(input string) int { return 0 }

// want=7
func (*Foo) Part2(input string) int { return 0 }

// helper has no sample.
func helper() {}

/*
want=x

z
*/
func standalone() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(sampleSrc))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Sample{
		"Foo.Part1":  {Want: "3", Input: "a\nb\n"},
		"Foo.Part2":  {Want: "7", Input: "a\nb\n"},
		"standalone": {Want: "x", Input: "z\n"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractSamples = %+v; want %+v", got, want)
	}

	if _, err := extractSamples([]byte("package days\nfunc {")); err == nil {
		t.Error("extractSamples accepted invalid source")
	}
}

type constSolver struct{ a, b string }

func (s constSolver) Part1(string) string { return s.a }
func (s constSolver) Part2(string) string { return s.b }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	Register[string](r, 3, constSolver{"c1", "c2"})
	Register[string](r, 1, &constSolver{"a1", "a2"})
	Register[string](r, 2, constSolver{"b1", "b2"})

	if got, want := r.Days(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Days = %v; want %v", got, want)
	}

	d, ok := r.Day(1)
	if !ok {
		t.Fatal("day 1 not registered")
	}
	if d.Num != 1 || d.Name != "constSolver" {
		t.Errorf("Day(1) = %d %q; want 1 %q", d.Num, d.Name, "constSolver")
	}
	if got := d.Solve(1, ""); got != "a1" {
		t.Errorf("Solve(1) = %v; want a1", got)
	}
	if got := d.Solve(2, ""); got != "a2" {
		t.Errorf("Solve(2) = %v; want a2", got)
	}
	if _, ok := r.Day(4); ok {
		t.Error("Day(4) found an unregistered day")
	}
	if _, ok := d.Sample(1); ok {
		t.Error("Sample(1) found a sample before any were added")
	}
}

func TestRegistrySamples(t *testing.T) {
	r := NewRegistry()
	Register[string](r, 1, constSolver{})
	src := []byte(`package aoc

// want=ok
func (constSolver) Part2(string) string { return "" }
`)
	if err := r.AddSamples(src); err != nil {
		t.Fatal(err)
	}
	d, _ := r.Day(1)
	if _, ok := d.Sample(1); ok {
		t.Error("part 1 has a sample; want none")
	}
	s, ok := d.Sample(2)
	if !ok || s.Want != "ok" {
		t.Errorf("Sample(2) = %+v, %v; want ok", s, ok)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func(r *Registry)
	}{
		{"zero day", func(r *Registry) { Register[string](r, 0, constSolver{}) }},
		{"duplicate", func(r *Registry) {
			Register[string](r, 1, constSolver{})
			Register[string](r, 1, constSolver{})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			tt.f(NewRegistry())
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestDigit(t *testing.T) {
	for r, want := range map[rune]int{'0': 0, '5': 5, '9': 9} {
		if got := Digit(r); got != want {
			t.Errorf("Digit(%q) = %d; want %d", r, got, want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("Digit('x') did not panic")
		}
	}()
	Digit('x')
}

func TestUint(t *testing.T) {
	if got := Uint("07"); got != 7 {
		t.Errorf("Uint(07) = %d; want 7", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Uint(-1) did not panic")
		}
	}()
	Uint("-1")
}
