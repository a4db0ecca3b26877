package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ConvertString marshal any value to string for log meta
func ConvertString(data interface{}) string {
	switch v := data.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		return v.Error()
	default:
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("%+v", data)
		}
		return string(b)
	}
}

func ConvertInt(data interface{}) int {
	switch v := data.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
