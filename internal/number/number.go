package number

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ToDecimal converts supported numeric values to an arbitrary-precision
// decimal. Comparing through decimals keeps 1, 1.0 and "1.10" vs 1.1 exact
// across the numeric kinds the decoders produce.
func ToDecimal(value any) (decimal.Decimal, bool) {
	switch current := value.(type) {
	case int:
		return decimal.NewFromInt(int64(current)), true
	case int8:
		return decimal.NewFromInt(int64(current)), true
	case int16:
		return decimal.NewFromInt(int64(current)), true
	case int32:
		return decimal.NewFromInt(int64(current)), true
	case int64:
		return decimal.NewFromInt(current), true
	case uint:
		return decimal.NewFromUint64(uint64(current)), true
	case uint8:
		return decimal.NewFromUint64(uint64(current)), true
	case uint16:
		return decimal.NewFromUint64(uint64(current)), true
	case uint32:
		return decimal.NewFromUint64(uint64(current)), true
	case uint64:
		return decimal.NewFromUint64(current), true
	case float32:
		return decimal.NewFromFloat32(current), true
	case float64:
		return decimal.NewFromFloat(current), true
	case json.Number:
		parsed, err := decimal.NewFromString(current.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return parsed, true
	case decimal.Decimal:
		return current, true
	default:
		return decimal.Decimal{}, false
	}
}
