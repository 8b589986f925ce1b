package config

import (
	"strconv"
	"strings"
)

const DefaultCoachColor = "#D5C79A"

type Coach struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Roster is the studio's static configuration: the coaches who can be booked
// and the course types a booking can be filed under. A Roster never changes
// after construction; accessors hand out copies.
type Roster struct {
	coaches     []Coach
	courseTypes []string
}

func NewRoster(coaches []Coach, courseTypes []string) Roster {
	r := Roster{
		coaches:     make([]Coach, len(coaches)),
		courseTypes: make([]string, len(courseTypes)),
	}
	copy(r.coaches, coaches)
	copy(r.courseTypes, courseTypes)
	return r
}

var studio = NewRoster(
	[]Coach{
		{ID: 1, Name: "Coach A", Color: "#4A90E2"},
		{ID: 2, Name: "Coach B", Color: "#7ED321"},
		{ID: 3, Name: "Coach C", Color: "#D0021B"},
	},
	[]string{
		"Beginner Training",
		"Core Improvement",
		"Posture Assessment",
		"Strength Training",
		"Stretch & Relax",
		"Personal Training",
		"Other",
	},
)

// Studio returns the roster the process was started with.
func Studio() Roster {
	return studio
}

func (r Roster) Coaches() []Coach {
	out := make([]Coach, len(r.coaches))
	copy(out, r.coaches)
	return out
}

func (r Roster) CoachNames() []string {
	names := make([]string, 0, len(r.coaches))
	for _, c := range r.coaches {
		names = append(names, c.Name)
	}
	return names
}

// CoachByID resolves the id as it arrives from a form or query string.
func (r Roster) CoachByID(id string) (Coach, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Coach{}, false
	}
	for _, c := range r.coaches {
		if c.ID == n {
			return c, true
		}
	}
	return Coach{}, false
}

func (r Roster) CoachByName(name string) (Coach, bool) {
	for _, c := range r.coaches {
		if c.Name == name {
			return c, true
		}
	}
	return Coach{}, false
}

func (r Roster) Color(coachName string) string {
	if c, ok := r.CoachByName(coachName); ok {
		return c.Color
	}
	return DefaultCoachColor
}

// Colors maps coach name to display colour.
func (r Roster) Colors() map[string]string {
	out := make(map[string]string, len(r.coaches))
	for _, c := range r.coaches {
		out[c.Name] = c.Color
	}
	return out
}

func (r Roster) CourseTypes() []string {
	out := make([]string, len(r.courseTypes))
	copy(out, r.courseTypes)
	return out
}
