package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nerrad567/nclink-core/internal/nclink"
)

// assignValue stores raw in the value slot selected by cfg.ValueType.
func assignValue(cfg *nclink.Config, raw any) error {
	if raw == nil {
		return nil
	}

	switch {
	case cfg.ValueType == nclink.ValueUnknown:
		return fmt.Errorf("value given without a value type")
	case cfg.ValueType == nclink.ValueBool:
		b, err := toBool(raw)
		if err != nil {
			return err
		}
		cfg.IntValue = 0
		if b {
			cfg.IntValue = 1
		}
	case cfg.ValueType.IsInteger():
		n, err := toInt(raw)
		if err != nil {
			return err
		}
		if lo, hi := intRange(cfg.ValueType); n < lo || n > hi {
			return fmt.Errorf("%s value %d out of range [%d, %d]", cfg.ValueType, n, lo, hi)
		}
		cfg.IntValue = n
	case cfg.ValueType == nclink.ValueFloat:
		f, err := toFloat(raw)
		if err != nil {
			return err
		}
		cfg.StrValue = strconv.FormatFloat(f, 'g', -1, 64)
	case cfg.ValueType == nclink.ValueJSONObjString:
		if s, ok := raw.(string); ok {
			cfg.StrValue = s
			return nil
		}
		data, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("encoding json value: %w", err)
		}
		cfg.StrValue = string(data)
	default:
		cfg.StrValue = fmt.Sprint(raw)
	}
	return nil
}

// intRange returns the accepted bounds for an integer value type.
// Char accepts both signed and unsigned bytes.
func intRange(vt nclink.ValueType) (lo, hi int64) {
	switch vt {
	case nclink.ValueChar:
		return math.MinInt8, math.MaxUint8
	case nclink.ValueShort:
		return math.MinInt16, math.MaxInt16
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("invalid bool value %q", v)
		}
		return b, nil
	}
	return false, fmt.Errorf("invalid bool value %v", raw)
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("integer value %d out of range", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("integer value %v has a fraction", v)
		}
		// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("integer value %v out of range", v)
		}
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value %q", v)
		}
		return n, nil
	}
	return 0, fmt.Errorf("invalid integer value %v", raw)
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float value %q", v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("invalid float value %v", raw)
}
