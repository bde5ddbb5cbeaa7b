package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		maxLen   int
		want     string
	}{
		{
			name:     "strips tags",
			fragment: "<section><h1>Plans</h1><p>Pick a tier</p></section>",
			maxLen:   80,
			want:     "Plans Pick a tier",
		},
		{
			name:     "collapses whitespace",
			fragment: "<div>\n  spaced \t  out\n</div>",
			maxLen:   80,
			want:     "spaced out",
		},
		{
			name:     "skips scripts and styles",
			fragment: "<div><script>var x=1;</script><style>.a{}</style>visible</div>",
			maxLen:   80,
			want:     "visible",
		},
		{
			name:     "truncates with ellipsis",
			fragment: "<p>abcdefghijklmnop</p>",
			maxLen:   10,
			want:     "abcdefg...",
		},
		{
			name:     "empty fragment",
			fragment: "",
			maxLen:   80,
			want:     "",
		},
		{
			name:     "unclosed markup still yields text",
			fragment: "<div><p>dangling",
			maxLen:   80,
			want:     "dangling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.fragment, tt.maxLen))
		})
	}
}
