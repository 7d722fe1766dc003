package models

// RawRecord is one CSV line as read, before any interpretation.
type RawRecord struct {
	Line  int
	Cells []string
}

// RecordGroup holds every record sharing the same raw first cell, in source order.
type RecordGroup struct {
	Key     string
	Records []RawRecord
}

// KeyedSection is a section produced by an interpreter together with its report key.
type KeyedSection struct {
	Key     string
	Section *SectionData
}
