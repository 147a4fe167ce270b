// Package render draws cities and tours as an ASCII map.
//
// The map is a Width×Height character grid with (0,0) in the top-left
// corner. Each city is written as its label "C_i" starting at its own
// coordinate; tour edges, including the closing edge back to the start, are
// then traced with '*' over blank cells only, so labels always stay legible.
//
// A plot is preceded by a "----------" separator line, which lets several
// plots (initial layout, final tour) share one stream.
package render
