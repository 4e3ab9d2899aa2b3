// Package render draws a cube scene for the terminal with lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeguess"
)

// Sticker is what a face currently shows.
type Sticker struct {
	Color cubeguess.Color
	Shown bool
}

// Scene is the cube as the player sees it: real colors on visible and
// revealed faces, gray elsewhere.
type Scene struct {
	Faces [cubeguess.NumFaces]Sticker
	Asked cubeguess.Face
}

// NewScene paints state with the given faces hidden.
func NewScene(state cubeguess.CubeState, hidden []cubeguess.Face) Scene {
	s := Scene{Asked: cubeguess.NoFace}
	for _, f := range cubeguess.AllFaces {
		s.Faces[f] = Sticker{Color: state[f], Shown: true}
	}
	for _, f := range hidden {
		s.Faces[f].Shown = false
	}
	return s
}

// Reveal paints face with color.
func (s *Scene) Reveal(face cubeguess.Face, color cubeguess.Color) {
	if face.Valid() {
		s.Faces[face] = Sticker{Color: color, Shown: true}
	}
}

const cellWidth = 3

var (
	hiddenStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(cubeguess.HiddenCSS)).
			Foreground(lipgloss.Color("#000000"))

	askedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(cubeguess.HiddenCSS)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)
)

// Swatch returns the style for a sticker of color c.
func Swatch(c cubeguess.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.CSS())).
		Foreground(lipgloss.Color("#000000"))
}

// cell renders one of the nine stickers of a face. The center sticker
// carries a label so the scene reads without color support.
func (s Scene) cell(face cubeguess.Face, index int) string {
	st := s.Faces[face]
	label := strings.Repeat(" ", cellWidth)
	center := index == 4

	switch {
	case st.Shown:
		if center {
			label = " " + strings.ToUpper(st.Color.String()[:1]) + " "
		}
		return Swatch(st.Color).Render(label)
	case face == s.Asked:
		if center {
			label = " ? "
		}
		return askedStyle.Render(label)
	default:
		return hiddenStyle.Render(label)
	}
}

// row renders row r (0-2) of a face with single-space gaps.
func (s Scene) row(face cubeguess.Face, r int) string {
	cells := make([]string, 3)
	for c := 0; c < 3; c++ {
		cells[c] = s.cell(face, r*3+c)
	}
	return strings.Join(cells, " ")
}

// Oblique draws the visible part of the cube: the up face sheared back
// above the front face.
func Oblique(s Scene) string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(strings.Repeat(" ", (3-r)*2))
		b.WriteString(s.row(cubeguess.Up, r))
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(s.row(cubeguess.Front, r))
		b.WriteString("\n")
	}
	return b.String()
}

// faceWidth is the printed width of one face row.
const faceWidth = 3*cellWidth + 2

// Net draws the cube unfolded:
//
//	   U
//	L  F  R  B
//	   D
func Net(s Scene) string {
	pad := strings.Repeat(" ", faceWidth+2)
	var b strings.Builder

	for r := 0; r < 3; r++ {
		b.WriteString(pad + s.row(cubeguess.Up, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		rows := make([]string, 0, 4)
		for _, f := range []cubeguess.Face{cubeguess.Left, cubeguess.Front, cubeguess.Right, cubeguess.Back} {
			rows = append(rows, s.row(f, r))
		}
		b.WriteString(strings.Join(rows, "  ") + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + s.row(cubeguess.Down, r) + "\n")
	}
	return b.String()
}

// Choices draws the answer swatches numbered from 1.
func Choices(colors []cubeguess.Color) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = fmt.Sprintf("%d %s", i+1, Swatch(c).Render(" "+c.Title()+" "))
	}
	return strings.Join(parts, "   ")
}
