package domain

import "fmt"

// RecordWarning describes a record that was excluded from an aggregation, or a
// guarded calculation that produced a degraded value. Statements always carry
// their warnings back to the caller; dirty data never aborts a report.
type RecordWarning struct {
	RecordID string `json:"recordId,omitempty"`
	Field    string `json:"field,omitempty"`
	Value    string `json:"value,omitempty"`
	Reason   string `json:"reason"`
}

func (w RecordWarning) String() string {
	if w.RecordID == "" {
		return w.Reason
	}
	return fmt.Sprintf("record %s: %s (%s=%q)", w.RecordID, w.Reason, w.Field, w.Value)
}
