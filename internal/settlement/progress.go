package settlement

import "github.com/mmynk/pointwallet/internal/models"

// Progress is the derived completion state of a settlement.
type Progress struct {
	PaidCount  int `json:"paidCount"`
	TotalCount int `json:"totalCount"`
	// Percent is floor(100 * PaidCount / TotalCount), 0 without participants.
	Percent int `json:"percent"`
}

// Done reports whether every participant has paid.
func (p Progress) Done() bool {
	return p.TotalCount > 0 && p.PaidCount == p.TotalCount
}

// ProgressOf computes the progress of s. It is a pure function of the
// participant list and is recomputed on every change.
func ProgressOf(s *models.Settlement) Progress {
	p := Progress{TotalCount: len(s.Participants)}
	for _, e := range s.Participants {
		if e.Status == models.StatusPaid {
			p.PaidCount++
		}
	}
	if p.TotalCount > 0 {
		p.Percent = p.PaidCount * 100 / p.TotalCount
	}
	return p
}
