package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  Request
		start bool
		count bool
	}{
		{name: "zero exits", line: "0", want: Request{Kind: KindExit}},
		{name: "plus zero exits", line: "+0", want: Request{Kind: KindExit}},
		{name: "single number", line: "17", want: Request{Kind: KindSingle, Start: 17}},
		{name: "surrounding whitespace", line: "  42 \n", want: Request{Kind: KindSingle, Start: 42}},
		{name: "list", line: "997 5", want: Request{Kind: KindList, Start: 997, Count: 5}},
		{name: "list from zero", line: "0 3", want: Request{Kind: KindList, Start: 0, Count: 3}},
		{name: "plus signs", line: "+1 +2", want: Request{Kind: KindList, Start: 1, Count: 2}},
		{
			name: "search",
			line: "1 2 even  -odd",
			want: Request{Kind: KindSearch, Start: 1, Count: 2, Properties: []string{"even", "-odd"}},
		},
		{
			name: "unknown properties pass through",
			line: "1 2 fizz",
			want: Request{Kind: KindSearch, Start: 1, Count: 2, Properties: []string{"fizz"}},
		},
		{name: "empty line", line: "", start: true},
		{name: "negative single", line: "-5", start: true},
		{name: "letters", line: "abc", start: true},
		{name: "overflow", line: "9223372036854775808", start: true},
		{name: "largest int", line: "9223372036854775807", want: Request{Kind: KindSingle, Start: 9223372036854775807}},
		{name: "zero count", line: "5 0", count: true},
		{name: "leading zero count", line: "5 05", count: true},
		{name: "both invalid", line: "x y", start: true, count: true},
		{name: "both invalid with properties", line: "-1 -1 even", start: true, count: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if !tt.start && !tt.count {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.start, formatErr.Start)
			assert.Equal(t, tt.count, formatErr.Count)
		})
	}
}

func TestFormatError_Unwrap(t *testing.T) {
	_, err := Parse("x y")

	assert.ErrorIs(t, err, ErrInvalidStart)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Parse("1 x")
	assert.NotErrorIs(t, err, ErrInvalidStart)
	assert.ErrorIs(t, err, ErrInvalidCount)
}
