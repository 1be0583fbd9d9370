package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToInt memaksa nilai JSON (number, numeric string, atau json.Number)
// menjadi int. Frontend lama mengirim jumlah/harga kadang sebagai string.
func ToInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case float64:
		return int(val), nil
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("nilai %q bukan angka", val.String())
		}
		return int(n), nil
	case string:
		s := strings.TrimSpace(val)
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("nilai %q bukan angka", val)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("nilai kosong")
	default:
		return 0, fmt.Errorf("tipe %T tidak bisa dikonversi ke angka", v)
	}
}
