package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "1234.56", Money(123456).Decimal().StringFixed(2))
	assert.Equal(t, Money(123457), MoneyFromDecimal(decimal.RequireFromString("1234.565")))
	assert.Equal(t, Money(-101), MoneyFromDecimal(decimal.RequireFromString("-1.005")))
}

func TestTrancheInput_Validate(t *testing.T) {
	tests := []struct {
		name  string
		input TrancheInput
		want  string
	}{
		{"valid forecast", TrancheInput{Month: 2, Year: 2026, Amount: 100, Status: StatusForecast, Probability: 40}, ""},
		{"month", TrancheInput{Month: 0, Year: 2026, Status: StatusRealized}, "month must be between 1 and 12"},
		{"status", TrancheInput{Month: 1, Year: 2026, Status: "pending"}, "status must be realized or forecast"},
		{"probability", TrancheInput{Month: 1, Year: 2026, Status: StatusForecast, Probability: 101}, "probability must be between 0 and 100"},
		{"amount", TrancheInput{Month: 1, Year: 2026, Amount: -1, Status: StatusForecast}, "amount must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Validate())
		})
	}
}

func TestTrancheInput_ValidateForcesRealizedProbability(t *testing.T) {
	in := TrancheInput{Month: 1, Year: 2026, Amount: 100, Status: StatusRealized, Probability: 40}
	assert.Empty(t, in.Validate())
	assert.Equal(t, 100, in.Probability)
}

func TestTranche_EffectiveProbability(t *testing.T) {
	assert.Equal(t, 100, (&Tranche{Status: StatusRealized, Probability: 40}).EffectiveProbability())
	assert.Equal(t, 40, (&Tranche{Status: StatusForecast, Probability: 40}).EffectiveProbability())
}

func TestAgentInput_ValidateDefaultsActive(t *testing.T) {
	in := AgentInput{Name: "Ana Novak", Branch: BranchHarbor}
	assert.Empty(t, in.Validate())
	if assert.NotNil(t, in.Active) {
		assert.True(t, *in.Active)
	}
	assert.Equal(t, "name is required", (&AgentInput{Branch: BranchHarbor}).Validate())
}

func TestBranchTargetInput_Validate(t *testing.T) {
	assert.Empty(t, (&BranchTargetInput{Branch: BranchHillside, Year: 2026, Month: 12, Planned: 0}).Validate())
	assert.Equal(t, "planned must be non-negative", (&BranchTargetInput{Branch: BranchHillside, Year: 2026, Month: 12, Planned: -5}).Validate())
}

func TestTransaction_Persisted(t *testing.T) {
	assert.False(t, (&Transaction{}).Persisted())
	assert.True(t, (&Transaction{ID: 7}).Persisted())
}
