package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

func TestComputeTotal(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		subTotal   string
		processing string
		system     string
		wantTotal  string
	}{
		{name: "flat fees", subTotal: "100", processing: "10", system: "10", wantTotal: "120.00"},
		{name: "cents do not drift", subTotal: "0.10", processing: "0.20", system: "0.00", wantTotal: "0.30"},
		{name: "large amount", subTotal: "1000000000.99", processing: "22.51", system: "10", wantTotal: "1000000033.50"},
		{name: "sub-cent fee rounds", subTotal: "100", processing: "2.255", system: "0", wantTotal: "102.26"},
		{name: "negative subtotal is clamped", subTotal: "-50", processing: "10", system: "10", wantTotal: "20.00"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.ComputeTotal(decimal.RequireFromString(tt.subTotal), entity.Fees{
				Processing: decimal.RequireFromString(tt.processing),
				System:     decimal.RequireFromString(tt.system),
			})

			require.Equal(t, tt.wantTotal, got.TotalAmount.StringFixed(2))
			require.True(t, got.TotalAmount.Equal(got.SubTotal.Add(got.ProcessingFee).Add(got.SystemFee)))
		})
	}
}

func TestComputeTotal_SumHoldsAboveThreshold(t *testing.T) {
	t.Parallel()

	threshold := decimal.NewFromInt(99)
	fees := entity.Fees{Processing: decimal.RequireFromString("10.10"), System: decimal.RequireFromString("10.20")}

	for cents := int64(9900); cents < 11000; cents += 7 {
		sub := decimal.New(cents, -2)
		if !entity.Payable(sub, threshold) {
			continue
		}

		got := entity.ComputeTotal(sub, fees)
		want := decimal.New(cents+2030, -2)

		require.True(t, want.Equal(got.TotalAmount), "subtotal %s: got %s want %s", sub, got.TotalAmount, want)
	}
}

func TestPayable(t *testing.T) {
	t.Parallel()

	threshold := decimal.NewFromInt(99)

	require.False(t, entity.Payable(decimal.Zero, threshold))
	require.False(t, entity.Payable(decimal.NewFromInt(99), threshold))
	require.True(t, entity.Payable(decimal.RequireFromString("99.01"), threshold))
	require.True(t, entity.Payable(decimal.NewFromInt(100), threshold))
}

func TestFeeSchedule_Estimate(t *testing.T) {
	t.Parallel()

	s := entity.FeeSchedule{
		ProcessingFee: decimal.NewFromInt(10),
		SystemFee:     decimal.NewFromInt(10),
	}
	sub := decimal.NewFromInt(1000)

	flat := s.Estimate(sub, entity.MethodCatalogEntry{})
	require.Equal(t, "10", flat.Processing.String())
	require.Equal(t, "10", flat.System.String())

	fixed := s.Estimate(sub, entity.MethodCatalogEntry{
		FeeValue: decimal.NewNullDecimal(decimal.NewFromInt(15)),
		FeeType:  entity.FeeTypeFixed,
	})
	require.Equal(t, "15", fixed.Processing.String())
	require.Equal(t, "10", fixed.System.String())

	percent := s.Estimate(sub, entity.MethodCatalogEntry{
		FeeValue: decimal.NewNullDecimal(decimal.RequireFromString("2.25")),
		FeeType:  entity.FeeTypePercent,
	})
	require.Equal(t, "22.50", percent.Processing.StringFixed(2))

	unknownType := s.Estimate(sub, entity.MethodCatalogEntry{
		FeeValue: decimal.NewNullDecimal(decimal.NewFromInt(3)),
		FeeType:  "tiered",
	})
	require.Equal(t, "10", unknownType.Processing.String())
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"0":           "0.00",
		"5":           "5.00",
		"999.999":     "1,000.00",
		"1234":        "1,234.00",
		"1234567.5":   "1,234,567.50",
		"-98765.432":  "-98,765.43",
		"-1234.5":     "-1,234.50",
		"-0.5":        "-0.50",
		"100000":      "100,000.00",
		"12345678901": "12,345,678,901.00",
	} {
		require.Equal(t, want, entity.FormatAmount(decimal.RequireFromString(in)), in)
	}
}
