// Package palette holds the cyclic colour groups used to tint projects
// and tasks, plus contrast helpers for text drawn on top of them.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Variation is one shade of a group. Order 1 is the darkest.
type Variation struct {
	Hex    string
	Order  int
	IsBase bool
}

// Group is a named family of shades.
type Group struct {
	Name        string
	Description string
	BaseColor   string
	Variations  []Variation
}

// ProjectOrder is the variation used for project bars.
const ProjectOrder = 1

// taskShades is the number of distinct task variations (orders 2 through 8).
const taskShades = 7

// Groups is the built-in palette, cycled by project index.
var Groups = []Group{
	{
		Name:        "ocean",
		Description: "Ocean blue variations for primary actions and highlights",
		BaseColor:   "#4793AF",
		Variations: []Variation{
			{Hex: "#2A5B6B", Order: 1},
			{Hex: "#3B7189", Order: 2},
			{Hex: "#4788A2", Order: 3},
			{Hex: "#4793AF", Order: 4, IsBase: true},
			{Hex: "#5EA3BC", Order: 5},
			{Hex: "#75B3C9", Order: 6},
			{Hex: "#8CC3D6", Order: 7},
			{Hex: "#A3D3E3", Order: 8},
			{Hex: "#B0DDE9", Order: 9},
		},
	},
	{
		Name:        "sunset",
		Description: "Warm orange variations for warnings and notifications",
		BaseColor:   "#FFC470",
		Variations: []Variation{
			{Hex: "#E6A245", Order: 1},
			{Hex: "#F5B355", Order: 2},
			{Hex: "#FFC165", Order: 3},
			{Hex: "#FFC470", Order: 4, IsBase: true},
			{Hex: "#FFCD89", Order: 5},
			{Hex: "#FFD6A2", Order: 6},
			{Hex: "#FFDFBB", Order: 7},
			{Hex: "#FFE8D4", Order: 8},
			{Hex: "#FFEEE2", Order: 9},
		},
	},
	{
		Name:        "sage",
		Description: "Natural green variations for success states and growth indicators",
		BaseColor:   "#4B7355",
		Variations: []Variation{
			{Hex: "#2F4735", Order: 1},
			{Hex: "#3C5C44", Order: 2},
			{Hex: "#476B50", Order: 3},
			{Hex: "#4B7355", Order: 4, IsBase: true},
			{Hex: "#638569", Order: 5},
			{Hex: "#7B977D", Order: 6},
			{Hex: "#93A991", Order: 7},
			{Hex: "#ABBBA5", Order: 8},
			{Hex: "#B9C7B2", Order: 9},
		},
	},
	{
		Name:        "coral",
		Description: "Bright red variations for errors and critical actions",
		BaseColor:   "#DD5746",
		Variations: []Variation{
			{Hex: "#B13838", Order: 1},
			{Hex: "#C94545", Order: 2},
			{Hex: "#D95242", Order: 3},
			{Hex: "#DD5746", Order: 4, IsBase: true},
			{Hex: "#E46D5E", Order: 5},
			{Hex: "#EB8376", Order: 6},
			{Hex: "#F2998E", Order: 7},
			{Hex: "#F9AFA6", Order: 8},
			{Hex: "#FCBBB4", Order: 9},
		},
	},
}

// GroupFor returns the group assigned to the project at projectIndex.
func GroupFor(projectIndex int) Group {
	return Groups[mod(projectIndex, len(Groups))]
}

// Shade returns the hex of the variation with the given order, or the
// group's base colour when the order is missing.
func (g Group) Shade(order int) string {
	for _, v := range g.Variations {
		if v.Order == order {
			return v.Hex
		}
	}
	return g.BaseColor
}

// ProjectColor is the darkest shade of the project's group.
func ProjectColor(projectIndex int) string {
	return GroupFor(projectIndex).Shade(ProjectOrder)
}

// TaskOrder maps a task index onto variation orders 2..8, cycling.
func TaskOrder(taskIndex int) int {
	return mod(taskIndex, taskShades) + 2
}

// TaskColor is the shade for a task within its project's group.
func TaskColor(projectIndex, taskIndex int) string {
	return GroupFor(projectIndex).Shade(TaskOrder(taskIndex))
}

// Luminance returns the WCAG relative luminance of hex. Unparseable
// input is treated as black.
func Luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastColor picks black or white text for a background colour.
func ContrastColor(hex string) string {
	if Luminance(hex) > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
