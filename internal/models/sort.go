package models

// SortField names a Holding attribute the holdings table can be ordered by.
// Values match the JSON field names.
type SortField string

const (
	SortSymbol          SortField = "symbol"
	SortName            SortField = "name"
	SortQuantity        SortField = "quantity"
	SortAvgPrice        SortField = "avgPrice"
	SortCurrentPrice    SortField = "currentPrice"
	SortSector          SortField = "sector"
	SortMarketCap       SortField = "marketCap"
	SortValue           SortField = "value"
	SortGainLoss        SortField = "gainLoss"
	SortGainLossPercent SortField = "gainLossPercent"
)

// SortFields lists every sortable field in table column order.
var SortFields = []SortField{
	SortSymbol, SortName, SortSector, SortMarketCap, SortQuantity,
	SortAvgPrice, SortCurrentPrice, SortValue, SortGainLoss, SortGainLossPercent,
}

// IsNumeric reports whether the field holds a number.
func (f SortField) IsNumeric() bool {
	switch f {
	case SortQuantity, SortAvgPrice, SortCurrentPrice, SortValue, SortGainLoss, SortGainLossPercent:
		return true
	}
	return false
}

// IsValid reports whether f is one of the known fields.
func (f SortField) IsValid() bool {
	for _, known := range SortFields {
		if f == known {
			return true
		}
	}
	return false
}

// SortDirection is the order applied by the sort comparator.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}
