package domain

import "fmt"

// ReportDocument is one rendered Markdown page of a report
type ReportDocument struct {
	Text      string
	PageIndex int
	PageTotal int
}

// Label returns the "i/total" page tag
func (d ReportDocument) Label() string {
	return fmt.Sprintf("%d/%d", d.PageIndex, d.PageTotal)
}
