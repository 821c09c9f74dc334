package part

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// unitPrice travels as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Part is one inventory record for an electronic component.
// swagger:model
type Part struct {
	ID           int    `json:"id"`
	PartNumber   string `json:"partNumber"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Category     string `json:"category,omitempty"`
	Quantity     int    `json:"quantity"`
	// We store unit price as NUMERIC in Postgres to avoid rounding errors
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Location       string          `json:"location,omitempty"`
	DatasheetURL   string          `json:"datasheetUrl,omitempty"`
	Specifications map[string]any  `json:"specifications"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// PartRequest is the create/update payload. quantity and unitPrice accept a
// JSON number or string and coerce to zero when absent or unparseable;
// specifications defaults to an empty map.
// swagger:model PartRequest
type PartRequest struct {
	PartNumber     string         `json:"partNumber"     example:"R-1K-1/4W"`
	Name           string         `json:"name"           example:"1K Ohm Resistor"`
	Description    string         `json:"description"    example:"1/4 Watt carbon film resistor"`
	Manufacturer   string         `json:"manufacturer"   example:"Vishay"`
	Category       string         `json:"category"       example:"Resistor"`
	Quantity       FlexInt        `json:"quantity"       swaggertype:"integer" example:"100"`
	UnitPrice      FlexDecimal    `json:"unitPrice"      swaggertype:"number" example:"0.05"`
	Location       string         `json:"location"       example:"A1-B2"`
	DatasheetURL   string         `json:"datasheetUrl"   example:"https://example.com/datasheet/r-1k.pdf"`
	Specifications map[string]any `json:"specifications"`
}

// Part converts the payload into a Part with coerced defaults applied.
func (r PartRequest) Part() *Part {
	specs := r.Specifications
	if specs == nil {
		specs = map[string]any{}
	}
	return &Part{
		PartNumber:     r.PartNumber,
		Name:           r.Name,
		Description:    r.Description,
		Manufacturer:   r.Manufacturer,
		Category:       r.Category,
		Quantity:       int(r.Quantity),
		UnitPrice:      r.UnitPrice.Decimal(),
		Location:       r.Location,
		DatasheetURL:   r.DatasheetURL,
		Specifications: specs,
	}
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Part not found
	Error string `json:"error"`
}

// DeleteResponse confirms a successful delete.
// swagger:model
type DeleteResponse struct {
	Message string `json:"message" example:"Part deleted successfully"`
}
