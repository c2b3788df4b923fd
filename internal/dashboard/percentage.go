package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Percentage is a share as the generator wrote it. Documents carry either a
// string ("30%") or a number (30); both decode to the display text.
type Percentage string

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p *Percentage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Percentage(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("percentage: expected string or number, got %s", data)
	}
	*p = Percentage(formatNumber(f) + "%")
	return nil
}

func (p *Percentage) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*p = Percentage(rv.StringValue())
	case bson.TypeDouble:
		*p = Percentage(formatNumber(rv.Double()) + "%")
	case bson.TypeInt32:
		*p = Percentage(strconv.FormatInt(int64(rv.Int32()), 10) + "%")
	case bson.TypeInt64:
		*p = Percentage(strconv.FormatInt(rv.Int64(), 10) + "%")
	case bson.TypeNull:
		*p = ""
	default:
		return fmt.Errorf("percentage: unsupported BSON type %s", t)
	}
	return nil
}
