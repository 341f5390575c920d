package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildPriceMap_FirstRowPerCommodityWins(t *testing.T) {
	rows := []PriceRow{
		{CommodityID: "usd-guid", ValueNum: 9, ValueDenom: 10, Date: date(20)},
		{CommodityID: "usd-guid", ValueNum: 8, ValueDenom: 10, Date: date(10)},
		{CommodityID: "chf-guid", ValueNum: 105, ValueDenom: 100, Date: date(15)},
	}

	diags := &DiagnosticSink{}
	rates := BuildPriceMap(rows, diags)

	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if !rates["usd-guid"].Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("usd rate = %s, want 0.9 (newest quote)", rates["usd-guid"])
	}
	if !rates["chf-guid"].Equal(decimal.RequireFromString("1.05")) {
		t.Errorf("chf rate = %s, want 1.05", rates["chf-guid"])
	}
	if len(diags.Items()) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags.Items())
	}
}

func TestBuildPriceMap_ZeroDenominatorSkipped(t *testing.T) {
	rows := []PriceRow{
		{CommodityID: "bad-guid", ValueNum: 5, ValueDenom: 0, Date: date(20)},
		{CommodityID: "bad-guid", ValueNum: 4, ValueDenom: 2, Date: date(10)},
	}

	diags := &DiagnosticSink{}
	rates := BuildPriceMap(rows, diags)

	// The zero-denominator row is skipped, so the older quote applies.
	if !rates["bad-guid"].Equal(decimal.NewFromInt(2)) {
		t.Errorf("rate = %s, want 2 from the older valid row", rates["bad-guid"])
	}

	items := diags.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	if items[0].Reason != DiagZeroPriceDenominator {
		t.Errorf("reason = %s, want %s", items[0].Reason, DiagZeroPriceDenominator)
	}
}

func TestConvertBalance(t *testing.T) {
	target := ConversionTarget{CommodityID: "eur-guid", Currency: "EUR"}
	rates := map[string]decimal.Decimal{
		"usd-guid": decimal.RequireFromString("0.9"),
	}

	tests := []struct {
		name        string
		balance     decimal.Decimal
		commodityID string
		mnemonic    string
		namespace   string
		want        decimal.Decimal
		wantOK      bool
		wantReason  DiagnosticReason
	}{
		{
			name:        "identity by commodity id",
			balance:     decimal.NewFromInt(50),
			commodityID: "eur-guid",
			mnemonic:    "EUR",
			namespace:   CurrencyNamespace,
			want:        decimal.NewFromInt(50),
			wantOK:      true,
		},
		{
			name:        "identity by mnemonic with different id",
			balance:     decimal.NewFromInt(50),
			commodityID: "other-eur-guid",
			mnemonic:    "EUR",
			namespace:   CurrencyNamespace,
			want:        decimal.NewFromInt(50),
			wantOK:      true,
		},
		{
			name:        "converted via rate",
			balance:     decimal.NewFromInt(100),
			commodityID: "usd-guid",
			mnemonic:    "USD",
			namespace:   CurrencyNamespace,
			want:        decimal.NewFromInt(90),
			wantOK:      true,
		},
		{
			name:        "missing commodity info",
			balance:     decimal.NewFromInt(100),
			commodityID: "",
			mnemonic:    "",
			namespace:   CurrencyNamespace,
			wantOK:      false,
			wantReason:  DiagMissingCommodityInfo,
		},
		{
			name:        "template commodity skipped silently",
			balance:     decimal.NewFromInt(100),
			commodityID: "tpl-guid",
			mnemonic:    "template",
			namespace:   TemplateNamespace,
			wantOK:      false,
		},
		{
			name:        "missing fx rate",
			balance:     decimal.NewFromInt(100),
			commodityID: "jpy-guid",
			mnemonic:    "JPY",
			namespace:   CurrencyNamespace,
			wantOK:      false,
			wantReason:  DiagMissingFXRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := &DiagnosticSink{}
			got, ok := ConvertBalance(tt.balance, tt.commodityID, tt.mnemonic, tt.namespace, target, rates, diags)

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && !got.Equal(tt.want) {
				t.Errorf("converted = %s, want %s", got, tt.want)
			}
			items := diags.Items()
			if tt.wantReason == "" {
				if len(items) != 0 {
					t.Errorf("unexpected diagnostics: %v", items)
				}
				return
			}
			if len(items) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", len(items))
			}
			if items[0].Reason != tt.wantReason {
				t.Errorf("reason = %s, want %s", items[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestConvertBalance_NilSinkDoesNotPanic(t *testing.T) {
	target := ConversionTarget{CommodityID: "eur-guid", Currency: "EUR"}

	_, ok := ConvertBalance(decimal.NewFromInt(1), "", "", "", target, nil, nil)
	if ok {
		t.Error("expected conversion to fail for missing commodity info")
	}
}
