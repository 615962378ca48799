package services

import (
	"github.com/shopspring/decimal"

	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/utils"
)

// Progress is the derived completion picture of one enrollment.
type Progress struct {
	Percentage     decimal.Decimal `json:"percentage"`
	CompletedUnits int             `json:"completed_units"`
	RemainingUnits int             `json:"remaining_units"`
}

// CalculateProgress derives the 0-100 percentage and unit counts. A COMPLETED
// enrollment reports exactly 100.00 without recomputing from unit counts: an
// early Complete leaves CurrentUnit below TotalUnits on purpose.
func CalculateProgress(e *models.Enrollment) Progress {
	if e.Status == models.StatusCompleted {
		return Progress{
			Percentage:     oneHundred,
			CompletedUnits: e.CurrentUnit - 1,
			RemainingUnits: e.TotalUnits - e.CurrentUnit + 1,
		}
	}

	pct := decimal.Zero
	if e.TotalUnits > 0 {
		ratio := utils.DivHalfUp(
			decimal.NewFromInt(int64(e.CurrentUnit)),
			decimal.NewFromInt(int64(e.TotalUnits)),
		)
		pct = utils.ScaleHalfUp(ratio.Mul(oneHundred), utils.FinalScale)
	}

	return Progress{
		Percentage:     pct,
		CompletedUnits: e.CurrentUnit - 1,
		RemainingUnits: e.TotalUnits - e.CurrentUnit + 1,
	}
}
