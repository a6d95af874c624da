package checker

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestIntValue(t *testing.T) {
	tests := []struct {
		raw     string
		negated bool
		want    int32
		wantErr bool
	}{
		{"0", false, 0, false},
		{"42", false, 42, false},
		{"2147483647", false, 2147483647, false},
		{"2147483648", false, 0, true},
		{"2147483648", true, -2147483648, false},
		{"2147483649", true, 0, true},
		{"99999999999999999999", false, 0, true},
	}
	for _, tt := range tests {
		got, err := IntValue(tt.raw, tt.negated)
		if tt.wantErr {
			be.True(t, err != nil)
			continue
		}
		be.Err(t, err, nil)
		be.Equal(t, got, tt.want)
	}
}

func TestCharValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint16
		wantErr bool
	}{
		{`'a'`, 'a', false},
		{`'\n'`, '\n', false},
		{`'\''`, '\'', false},
		{`'"'`, '"', false},
		{`'\\'`, '\\', false},
		{`''`, 0, true},
		{`'ab'`, 0, true},
		{`'\q'`, 0, true},
		{`'😀'`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := CharValue(tt.raw)
			if tt.wantErr {
				be.True(t, err != nil)
				return
			}
			be.Err(t, err, nil)
			be.Equal(t, got, tt.want)
		})
	}
}

func TestStringValue(t *testing.T) {
	got, err := StringValue(`"say \"hi\"\n"`)
	be.Err(t, err, nil)
	be.Equal(t, got, "say \"hi\"\n")

	got, err = StringValue(`"it\'s"`)
	be.Err(t, err, nil)
	be.Equal(t, got, "it's")

	_, err = StringValue(`"bad \x"`)
	be.True(t, err != nil)
}
