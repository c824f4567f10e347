package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/classify"
	"github.com/phil-mansfield/gofrac/fractal"
	"github.com/phil-mansfield/gofrac/particle"
)

// PrintRows writes rows of cells to w with every column right-aligned to its
// widest cell. The header is written as a '#' comment so that the output can
// be read back by anything which reads point files.
func PrintRows(w io.Writer, header []string, rows [][]string) error {
	width := len(header)
	for i := range rows {
		if len(rows[i]) > width { width = len(rows[i]) }
	}

	ws := make([]int, width)
	for i := range header {
		if len(header[i]) > ws[i] { ws[i] = len(header[i]) }
	}
	for i := range rows {
		for j := range rows[i] {
			if len(rows[i][j]) > ws[j] { ws[j] = len(rows[i][j]) }
		}
	}

	if len(header) > 0 {
		if _, err := fmt.Fprintln(w, "#" + formatRow(ws, header)); err != nil {
			return err
		}
	}
	for i := range rows {
		if _, err := fmt.Fprintln(w, " " + formatRow(ws, rows[i])); err != nil {
			return err
		}
	}
	return nil
}

func formatRow(ws []int, row []string) string {
	cells := make([]string, len(row))
	for j := range row { cells[j] = fmt.Sprintf("%*s", ws[j], row[j]) }
	return strings.Join(cells, " ")
}

// PrintParticles writes one row per particle: its index, position, radius,
// contact degree, and role.
func PrintParticles(
	w io.Writer, s *particle.Set, cls *classify.Classification,
) error {
	if s.Len() != cls.Len() {
		panic("Particle count does not equal classification length.")
	}

	rows := make([][]string, s.Len())
	for i := range rows {
		x := s.Position(i)
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.10g", x[0]),
			fmt.Sprintf("%.10g", x[1]),
			fmt.Sprintf("%.10g", x[2]),
			fmt.Sprintf("%.10g", s.Radius(i)),
			fmt.Sprintf("%d", cls.Degrees[i]),
			cls.Roles[i].String(),
		}
	}

	header := []string{ "id", "x", "y", "z", "r", "degree", "role" }
	return PrintRows(w, header, rows)
}

// PrintChains writes one row per chain: its index, length, and members in
// traversal order.
func PrintChains(w io.Writer, chains []chain.Chain) error {
	rows := make([][]string, len(chains))
	for i, ch := range chains {
		members := make([]string, len(ch))
		for j := range ch { members[j] = fmt.Sprintf("%d", ch[j]) }
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", ch.Len()),
			strings.Join(members, ","),
		}
	}
	return PrintRows(w, []string{ "chain", "length", "members" }, rows)
}

// PrintSummary writes role counts and the fractal measurements of an
// aggregate as "# name = value" comment lines.
func PrintSummary(
	w io.Writer, name string, cls *classify.Classification,
	chains []chain.Chain, m *fractal.Measurement,
) error {
	lines := []string{
		fmt.Sprintf("# File = %s", name),
		fmt.Sprintf("# Particles = %d", m.Particles),
	}
	for r := classify.Isolated; r < classify.EndRole; r++ {
		lines = append(lines, fmt.Sprintf("# %ss = %d", r, cls.Count(r)))
	}
	lines = append(lines,
		fmt.Sprintf("# Chains = %d", len(chains)),
		fmt.Sprintf("# GyrationRadius = %.6g", m.GyrationRadius),
		fmt.Sprintf("# MeanRadius = %.6g", m.MeanRadius),
		fmt.Sprintf("# Monodisperse = %t", m.Monodisperse),
	)
	if m.Prefactor > 0 {
		lines = append(lines, fmt.Sprintf("# Prefactor = %.6g", m.Prefactor))
	}
	for _, warn := range m.Warnings() {
		lines = append(lines, "# WARNING: " + warn)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil { return err }
	}
	return nil
}
