package nvp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "empty line",
			line: "",
			want: Record{},
		},
		{
			name: "whitespace only",
			line: "   \t  ",
			want: Record{},
		},
		{
			name: "single pair",
			line: "pause=10",
			want: Record{"pause": "10"},
		},
		{
			name: "multiple pairs",
			line: "pause=12.5 type=scavenge reason=allocation",
			want: Record{"pause": "12.5", "type": "scavenge", "reason": "allocation"},
		},
		{
			name: "tabs and repeated spaces",
			line: "pause=1\t\ttype=mark   external=0.5",
			want: Record{"pause": "1", "type": "mark", "external": "0.5"},
		},
		{
			name: "token without separator ignored",
			line: "garbage pause=3",
			want: Record{"pause": "3"},
		},
		{
			name: "empty name ignored",
			line: "=5 pause=3",
			want: Record{"pause": "3"},
		},
		{
			name: "empty value kept",
			line: "pause=",
			want: Record{"pause": ""},
		},
		{
			name: "value containing separator",
			line: "expr=a=b",
			want: Record{"expr": "a=b"},
		},
		{
			name: "last occurrence wins",
			line: "pause=1 pause=2",
			want: Record{"pause": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.line))
		})
	}
}

func TestSplitIntoReusesRecord(t *testing.T) {
	rec := make(Record)

	SplitInto("pause=1 type=scavenge", rec)
	assert.Equal(t, Record{"pause": "1", "type": "scavenge"}, rec)

	SplitInto("external=2", rec)
	assert.Equal(t, Record{"external": "2"}, rec, "previous fields must be cleared")

	SplitInto("", rec)
	assert.Empty(t, rec)
}

func BenchmarkSplitInto(b *testing.B) {
	line := "pause=12.5 type=scavenge reason=allocation external=0.5 mark=3.25 sweep=1.75"
	rec := make(Record)

	for b.Loop() {
		SplitInto(line, rec)
	}
}
