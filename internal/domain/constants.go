package domain

// Commodity namespaces as stored in the ledger database.
const (
	CurrencyNamespace = "CURRENCY"
	TemplateNamespace = "TEMPLATE"
	TemplateMnemonic  = "template"
)

// AccountPathDelimiter separates segments in a full account name.
const AccountPathDelimiter = ":"

// DefaultAssetRootName is the top-level account under which the asset
// category hierarchy lives.
const DefaultAssetRootName = "Actif"

// DefaultAssetTypes are the account types treated as assets.
var DefaultAssetTypes = TypeSet(
	"ASSET",
	"BANK",
	"CASH",
	"STOCK",
	"MUTUAL",
	"RECEIVABLE",
)

// DefaultLiabilityTypes are the account types treated as liabilities.
var DefaultLiabilityTypes = TypeSet(
	"LIABILITY",
	"CREDIT",
	"PAYABLE",
)

// TypeSet builds a membership set from account type names.
func TypeSet(types ...string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}
