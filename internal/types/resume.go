// Package types provides type definitions for structured data used throughout the interview-prep system.
package types

import (
	"encoding/json"
	"fmt"
)

// PersonalInfo holds the contact and identity fields of a resume.
// Every field is optional; empty strings are simply omitted from rendered text.
type PersonalInfo struct {
	Image      string `json:"image,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Profession string `json:"profession,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	Website    string `json:"website,omitempty"`
}

// Experience is a single work-history entry.
type Experience struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	IsCurrent   bool   `json:"is_current,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// SkillGroup is a named group of skill strings. An empty Category is valid
// and means the items have no grouping label.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// SkillSet is the normalized representation of a resume's skills section.
// Stored resumes exist in two shapes in the wild: a flat array of strings,
// or an array of {category, items} groups. SkillSet accepts both on
// ingestion and normalizes to groups once, so consumers never re-detect
// the shape.
type SkillSet struct {
	Groups []SkillGroup
}

// UnmarshalJSON accepts either ["Go", "SQL"] or
// [{"category": "Languages", "items": ["Go", "SQL"]}].
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	s.Groups = nil

	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		if len(flat) > 0 {
			s.Groups = []SkillGroup{{Category: "", Items: flat}}
		}
		return nil
	}

	var grouped []SkillGroup
	if err := json.Unmarshal(data, &grouped); err == nil {
		s.Groups = grouped
		return nil
	}

	return fmt.Errorf("skills must be an array of strings or an array of {category, items} groups")
}

// MarshalJSON always emits the grouped form.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	if s.Groups == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Groups)
}

// Count returns the total number of individual skill strings across all groups.
func (s SkillSet) Count() int {
	total := 0
	for _, g := range s.Groups {
		total += len(g.Items)
	}
	return total
}

// Resume is a structured resume record. It is owned by the external
// persistence layer and consumed read-only here; any section may be absent.
type Resume struct {
	PersonalInfo        PersonalInfo `json:"personal_info,omitempty"`
	ProfessionalSummary string       `json:"professional_summary,omitempty"`
	Skills              SkillSet     `json:"skills,omitempty"`
	Experience          []Experience `json:"experience,omitempty"`
	Project             []Project    `json:"project,omitempty"`
	Education           []Education  `json:"education,omitempty"`
}
