package aoc

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const rule = "===================="

type styles struct {
	pass, fail, warn, dim lipgloss.Style
}

// newStyles picks colors for w; writers that are not terminals get none.
func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	return &styles{
		pass: r.NewStyle().Foreground(lipgloss.Color("2")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		dim:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// seconds formats d as fractional seconds with no trailing zeros.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

func answer(res Result) string {
	if res.Err != nil {
		return "error: " + res.Err.Error()
	}
	return res.Output
}

func (h *Harness) printReport(rep Report) {
	out, st := h.out(), h.style()
	for _, res := range rep.Results {
		if res.Err != nil {
			fmt.Fprintf(out, "Part %d %s after %s s.\n", res.Part, st.fail.Render("failed"), seconds(res.Elapsed))
			fmt.Fprintln(out, st.dim.Render("====== Error ======="))
			fmt.Fprintln(out, st.fail.Render(res.Err.Error()))
		} else {
			fmt.Fprintf(out, "Part %d ran for %s s.\n", res.Part, seconds(res.Elapsed))
			fmt.Fprintln(out, st.dim.Render("====== Output ======"))
			fmt.Fprintln(out, res.Output)
		}
		fmt.Fprintln(out, st.dim.Render(rule))
		fmt.Fprintln(out)
	}
}

// formatReport renders rep the way it is stored in the output file.
func formatReport(rep Report) []byte {
	var buf bytes.Buffer
	for _, res := range rep.Results {
		fmt.Fprintf(&buf, "Part %d (time: %s s)\n", res.Part, seconds(res.Elapsed))
		fmt.Fprintln(&buf, rule)
		fmt.Fprintln(&buf, answer(res))
		fmt.Fprintln(&buf, rule)
		fmt.Fprintln(&buf)
	}
	return buf.Bytes()
}
