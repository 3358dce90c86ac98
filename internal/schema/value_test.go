package schema

import (
	"testing"

	"github.com/nerrad567/nclink-core/internal/nclink"
)

func TestAssignValue(t *testing.T) {
	tests := []struct {
		name      string
		valueType nclink.ValueType
		raw       any
		want      any
		wantErr   bool
	}{
		{"nil leaves slots empty", nclink.ValueInt, nil, int64(0), false},
		{"int", nclink.ValueInt, 42, int64(42), false},
		{"int from string", nclink.ValueShort, "0x10", int64(16), false},
		{"int from whole float", nclink.ValueInt, 3.0, int64(3), false},
		{"int rejects fraction", nclink.ValueInt, 3.5, nil, true},
		{"bool true", nclink.ValueBool, true, true, false},
		{"bool from string", nclink.ValueBool, "false", false, false},
		{"bool rejects word", nclink.ValueBool, "maybe", nil, true},
		{"char from int", nclink.ValueChar, 65, int64(65), false},
		{"char unsigned byte", nclink.ValueChar, 255, int64(255), false},
		{"char signed byte", nclink.ValueChar, -128, int64(-128), false},
		{"char overflow", nclink.ValueChar, 300, nil, true},
		{"char underflow", nclink.ValueChar, -129, nil, true},
		{"short max", nclink.ValueShort, 32767, int64(32767), false},
		{"short overflow", nclink.ValueShort, 100000, nil, true},
		{"short underflow", nclink.ValueShort, -32769, nil, true},
		{"int large whole float", nclink.ValueInt, 1.0e18, int64(1e18), false},
		{"int float overflow", nclink.ValueInt, 1.0e19, nil, true},
		{"int float underflow", nclink.ValueInt, -1.0e19, nil, true},
		{"float", nclink.ValueFloat, 2.5, "2.5", false},
		{"float from int", nclink.ValueFloat, 7, "7", false},
		{"string", nclink.ValueString, "lathe", "lathe", false},
		{"string from number", nclink.ValueString, 12, "12", false},
		{"json from map", nclink.ValueJSONObjString, map[string]any{"a": 1}, `{"a":1}`, false},
		{"json passthrough", nclink.ValueJSONObjString, `{"b":2}`, `{"b":2}`, false},
		{"unknown type with value", nclink.ValueUnknown, 1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := nclink.NewConfig("c", "C", "C")
			cfg.ValueType = tt.valueType

			err := assignValue(cfg, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("assignValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := cfg.Value(); got != tt.want {
				t.Errorf("Value() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}
