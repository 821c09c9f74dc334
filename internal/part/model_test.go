package part

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart_MarshalJSON(t *testing.T) {
	p := Part{
		ID:         7,
		PartNumber: "IC-555-TIMER",
		Name:       "555 Timer IC",
		Category:   "IC",
		Quantity:   25,
		UnitPrice:  decimal.RequireFromString("0.75"),
		Specifications: map[string]any{
			"pins": 8,
		},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	body := string(raw)

	// unitPrice must be a bare number on the wire
	assert.Contains(t, body, `"unitPrice":0.75`)
	assert.Contains(t, body, `"partNumber":"IC-555-TIMER"`)
	// empty optional strings are omitted
	assert.NotContains(t, body, `"manufacturer"`)
	assert.NotContains(t, body, `"location"`)
	assert.Contains(t, body, `"specifications"`)
}

func TestPart_MarshalEmptySpecifications(t *testing.T) {
	p := Part{Name: "X", Specifications: map[string]any{}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"specifications":{}`)
}
