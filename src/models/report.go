// src/models/report.go
package models

import (
	"regexp"
	"strings"
)

// Synthetic keys attached to every parsed data row.
const (
	RecordTypeKey = "_record_type"
	SectionKey    = "_section"
)

// Record types recognised in column 1 of a broker export.
const (
	RecordTypeHeader   = "Header"
	RecordTypeData     = "Data"
	RecordTypeTotal    = "Total"
	RecordTypeSubTotal = "SubTotal"
)

// Row maps a header name to the raw, trimmed cell value.
type Row map[string]string

// Get returns the raw value for field, or "" when the column is absent.
func (r Row) Get(field string) string {
	return r[field]
}

// Lookup reports whether the column exists in the row.
func (r Row) Lookup(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

func (r Row) RecordType() string {
	return r[RecordTypeKey]
}

// SectionData is one logical sub-table of the export.
type SectionData struct {
	Name     string            `json:"sectionName"`
	Headers  []string          `json:"headers"`
	Rows     []Row             `json:"dataRows"`
	Metadata map[string]string `json:"metadata"`
}

// NewSectionData creates an empty section for the given raw label.
func NewSectionData(name string) *SectionData {
	return &SectionData{
		Name:     name,
		Headers:  []string{},
		Rows:     []Row{},
		Metadata: map[string]string{},
	}
}

// Report is the parsed form of one imported file, keyed by normalized section name.
type Report struct {
	Sections map[string]*SectionData `json:"sections"`
	order    []string
}

func NewReport() *Report {
	return &Report{Sections: make(map[string]*SectionData)}
}

// AddSection registers section under key. An existing key keeps its position in Keys.
func (r *Report) AddSection(key string, section *SectionData) {
	if _, exists := r.Sections[key]; !exists {
		r.order = append(r.order, key)
	}
	r.Sections[key] = section
}

func (r *Report) Section(key string) (*SectionData, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.Sections[key]
	return s, ok
}

// FindSection returns the first section present among the candidates. Each
// candidate is tried as a report key first and then as a raw label.
func (r *Report) FindSection(candidates ...string) (*SectionData, string, bool) {
	for _, c := range candidates {
		if s, ok := r.Section(c); ok {
			return s, c, true
		}
		key := NormalizeSectionName(c)
		if s, ok := r.Section(key); ok {
			return s, key, true
		}
	}
	return nil, "", false
}

// Keys lists section keys in the order they were first registered.
func (r *Report) Keys() []string {
	if r == nil {
		return []string{}
	}
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// TotalRows counts data rows across all sections.
func (r *Report) TotalRows() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, s := range r.Sections {
		total += len(s.Rows)
	}
	return total
}

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRunRegex   = regexp.MustCompile(`\s+`)
)

// NormalizeSectionName turns a raw section label into its report key:
// trimmed, punctuation and non-ASCII letters stripped, whitespace runs to "_", lowercased.
func NormalizeSectionName(label string) string {
	s := strings.TrimSpace(label)
	s = nonAlphanumericRegex.ReplaceAllString(s, "")
	s = whitespaceRunRegex.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}
