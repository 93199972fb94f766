package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "empty", in: nil, want: []string{}},
		{name: "no duplicates", in: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "keeps first occurrence order", in: []string{"b", "a", "b", "a", "c"}, want: []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RemoveDuplicates(tt.in))
		})
	}
}
