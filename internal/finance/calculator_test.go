package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperdean/pocketwise/internal/common"
)

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name             string
		principal        float64
		rate             float64
		years            float64
		compoundsPerYear int
		want             float64
		wantErr          bool
	}{
		{
			name:             "monthly compounding",
			principal:        1000,
			rate:             0.05,
			years:            10,
			compoundsPerYear: 12,
			want:             1647.01,
		},
		{
			name:             "annual compounding",
			principal:        1000,
			rate:             0.05,
			years:            10,
			compoundsPerYear: 1,
			want:             1628.89,
		},
		{
			name:             "zero rate returns principal",
			principal:        5000,
			rate:             0,
			years:            3,
			compoundsPerYear: 12,
			want:             5000,
		},
		{
			name:             "zero years returns principal",
			principal:        5000,
			rate:             0.07,
			years:            0,
			compoundsPerYear: 12,
			want:             5000,
		},
		{
			name:             "negative principal rejected",
			principal:        -100,
			rate:             0.05,
			years:            1,
			compoundsPerYear: 12,
			wantErr:          true,
		},
		{
			name:             "negative years rejected",
			principal:        100,
			rate:             0.05,
			years:            -1,
			compoundsPerYear: 12,
			wantErr:          true,
		},
		{
			name:             "zero compounds per year rejected",
			principal:        100,
			rate:             0.05,
			years:            1,
			compoundsPerYear: 0,
			wantErr:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompoundInterest(tt.principal, tt.rate, tt.years, tt.compoundsPerYear)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestCompoundInterestMonthlyBeatsAnnual(t *testing.T) {
	monthly, err := CompoundInterest(1000, 0.05, 10, DefaultCompoundsPerYear)
	require.NoError(t, err)

	simple := 1000 * math.Pow(1.05, 10)
	assert.Greater(t, monthly, simple)
}

func TestAmortizedPayment(t *testing.T) {
	tests := []struct {
		name    string
		loan    float64
		rate    float64
		years   int
		want    float64
		wantErr bool
	}{
		{
			name:  "standard five year loan",
			loan:  10000,
			rate:  0.05,
			years: 5,
			want:  188.71,
		},
		{
			name:  "thirty year mortgage",
			loan:  300000,
			rate:  0.065,
			years: 30,
			want:  1896.20,
		},
		{
			name:  "zero rate divides evenly",
			loan:  12000,
			rate:  0,
			years: 1,
			want:  1000,
		},
		{
			name:    "zero years rejected",
			loan:    10000,
			rate:    0.05,
			years:   0,
			wantErr: true,
		},
		{
			name:    "negative years rejected",
			loan:    10000,
			rate:    0.05,
			years:   -2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmortizedPayment(tt.loan, tt.rate, tt.years)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}
