package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "empty",
			pairs: nil,
			want:  map[string]any{},
		},
		{
			name:  "simple pairs",
			pairs: []string{"name=Ada", "when=tomorrow"},
			want:  map[string]any{"name": "Ada", "when": "tomorrow"},
		},
		{
			name:  "value keeps extra equals",
			pairs: []string{"query=a=b"},
			want:  map[string]any{"query": "a=b"},
		},
		{
			name:  "empty value allowed",
			pairs: []string{"note="},
			want:  map[string]any{"note": ""},
		},
		{
			name:    "missing equals",
			pairs:   []string{"justakey"},
			wantErr: true,
		},
		{
			name:    "empty key",
			pairs:   []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInputs(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "multi line", truncate("multi\nline", 20))
	require.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
