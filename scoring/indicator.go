package scoring

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeIndicator converts an indicator value of unknown shape into a
// display string. Upstream delivers indicators as plain strings, as objects
// carrying a "definition" or "text" field, or occasionally as something else
// entirely; nothing here ever fails or drops an entry.
func NormalizeIndicator(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		if fields, ok := objectFields(v); ok {
			if s, ok := fields["definition"].(string); ok && s != "" {
				return s
			}
			if s, ok := fields["text"].(string); ok && s != "" {
				return s
			}
			b, err := json.Marshal(fields)
			if err != nil {
				return ""
			}
			return string(b)
		}
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// NormalizeIndicators applies NormalizeIndicator element-wise. Order and
// duplicates are preserved: de-duplication could hide repeated evidence gaps
// within the same finding.
func NormalizeIndicators(vs []interface{}) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, NormalizeIndicator(v))
	}
	return out
}

// objectFields extracts the key/value view of a decoded JSON or BSON object.
func objectFields(v interface{}) (map[string]interface{}, bool) {
	switch val := v.(type) {
	case map[string]interface{}:
		return val, true
	case primitive.M:
		return map[string]interface{}(val), true
	case primitive.D:
		return val.Map(), true
	}
	return nil, false
}
