package domain

// DiagnosticReason classifies why a row was skipped or flagged during
// aggregation.
type DiagnosticReason string

const (
	DiagMissingCommodityInfo DiagnosticReason = "missing_commodity_info"
	DiagMissingFXRate        DiagnosticReason = "missing_fx_rate"
	DiagZeroPriceDenominator DiagnosticReason = "zero_price_denominator"
	DiagSignConvention       DiagnosticReason = "sign_convention_violation"
)

// Diagnostic identifies one skipped or suspect row. Aggregation never
// fails on these; callers decide whether to log or surface them.
type Diagnostic struct {
	Reason      DiagnosticReason
	CommodityID string
	Mnemonic    string
	AccountType string
	Detail      string
}

// DiagnosticSink collects diagnostics during an aggregation pass.
// A nil sink discards everything, so pure helpers can be called
// without one.
type DiagnosticSink struct {
	items []Diagnostic
}

// Add records a diagnostic.
func (s *DiagnosticSink) Add(d Diagnostic) {
	if s == nil {
		return
	}
	s.items = append(s.items, d)
}

// Items returns the collected diagnostics in record order.
func (s *DiagnosticSink) Items() []Diagnostic {
	if s == nil {
		return nil
	}
	return s.items
}
