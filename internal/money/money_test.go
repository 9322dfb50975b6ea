package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "dot separator", in: "12.34", want: 1234},
		{name: "comma separator", in: "12,34", want: 1234},
		{name: "no fraction", in: "20", want: 2000},
		{name: "single fraction digit", in: "5.2", want: 520},
		{name: "third digit rounds down", in: "12.344", want: 1234},
		{name: "third digit rounds up", in: "12.346", want: 1235},
		{name: "zero allowed", in: "0", want: 0},
		{name: "surrounding spaces", in: " 10.50 ", want: 1050},
		{name: "negative rejected", in: "-1.00", wantErr: true},
		{name: "plus sign rejected", in: "+1.00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "two separators", in: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCents(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "15.75", Format(1575))
	assert.Equal(t, "0.05", Format(5))
	assert.Equal(t, "-3.10", Format(-310))
}

func TestToFloat(t *testing.T) {
	assert.InDelta(t, 15.75, ToFloat(1575), 1e-9)
}
