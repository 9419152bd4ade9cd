package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target owned by the caller; the engine only reads it.
type Goal struct {
	Title        string          `yaml:"title" json:"title"`
	TargetAmount decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	CurrentSaved decimal.Decimal `yaml:"current_saved" json:"current_saved"`
	Deadline     time.Time       `yaml:"deadline" json:"deadline"`
}

// RemainingAmount is the amount still to be saved. May be negative or zero
// when the goal has been met or overshot.
func (g *Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentSaved)
}
