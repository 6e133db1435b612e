package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

const tree = `          .     .  .      +     .      .          .
     .       .      .     #       .           .
        .      .         ###            .      .      .
      .      .   "#:. .:##"##:. .:#"  .      .
          .      . "####"###"####"  .
       .     "#:.    .:#"###"#:.    .:#"  .        .       .
  .             "#########"#########"        .        .
        .    "#:.  "####"###"####"  .:#"   .       .
     .     .  "#######""##"##""#######"                  .
                ."##"#####"#####"##"           .      .
    .   "#:. ...  .:##"###"###"##:.  ... .:#"     .
      .     "#######"##"#####"##"#######"      .     .
    .    .     "#####""#######""#####"    .      .
            .     "      000      "    .     .
       .         .   .   000     .        .       .
.. .. ..................O000O........................ ...... ...`

func printBanner(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	title := figure.NewFigure("Advent of Code 2023", "standard", true)
	fmt.Fprintln(w, r.NewStyle().Foreground(lipgloss.Color("9")).Render(title.String()))
	fmt.Fprintln(w)
	green := r.NewStyle().Foreground(lipgloss.Color("2"))
	for _, line := range strings.Split(tree, "\n") {
		fmt.Fprintln(w, green.Render(line))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running solution set...")
}
