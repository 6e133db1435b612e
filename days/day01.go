package days

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2023"
)

// Trebuchet solves day 1: recovering calibration values from lines of
// text, each value being the line's first and last digit.
type Trebuchet struct{}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (Trebuchet) Part1(input string) uint {
	var vals []uint
	for _, line := range aoc.Lines(input) {
		first, last := byte('0'), byte('0')
		if i := strings.IndexFunc(line, isDigit); i >= 0 {
			first = line[i]
		}
		if i := strings.LastIndexFunc(line, isDigit); i >= 0 {
			last = line[i]
		}
		vals = append(vals, aoc.Uint(string([]byte{first, last})))
	}
	return aoc.Sum(vals...)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (Trebuchet) Part2(input string) uint {
	var vals []uint
	for _, line := range aoc.Lines(input) {
		first, last, ok := findDigits(line)
		if !ok {
			panic(fmt.Sprintf("no digit in line %q", line))
		}
		vals = append(vals, aoc.Uint(fmt.Sprintf("%d%d", first, last)))
	}
	return aoc.Sum(vals...)
}

func isDigit(r rune) bool {
	return r < 0x80 && aoc.IsDigit(byte(r))
}

// digitTokens are matched anywhere in a line, overlaps included.
// Order matters: on equal offsets the earlier token wins.
var digitTokens = [...]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

var digitWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// findDigits returns the values of the tokens with the smallest and largest
// start offsets in line. ok is false if line has no token.
func findDigits(line string) (first, last int, ok bool) {
	lo, hi := -1, -1
	for _, tok := range digitTokens {
		for off := 0; off < len(line); {
			i := strings.Index(line[off:], tok)
			if i < 0 {
				break
			}
			i += off
			if lo < 0 || i < lo {
				lo, first = i, tokenValue(tok)
			}
			if i > hi {
				hi, last = i, tokenValue(tok)
			}
			off = i + 1
		}
	}
	return first, last, lo >= 0
}

func tokenValue(tok string) int {
	if v, ok := digitWords[tok]; ok {
		return v
	}
	return aoc.Digit(rune(tok[0]))
}
