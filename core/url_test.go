package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLinkedInURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already canonical",
			input:    "https://www.linkedin.com/in/jane-doe",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "trailing slash stripped",
			input:    "https://www.linkedin.com/in/jane-doe/",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "query string dropped",
			input:    "https://www.linkedin.com/in/jane-doe?utm_source=share&trk=profile",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "fragment dropped",
			input:    "https://www.linkedin.com/in/jane-doe#about",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "scheme assumed when missing",
			input:    "www.linkedin.com/in/jane-doe",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "host lowercased",
			input:    "HTTPS://WWW.LinkedIn.COM/in/Jane-Doe",
			expected: "https://www.linkedin.com/in/Jane-Doe",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  https://www.linkedin.com/in/jane-doe  ",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "multiple trailing slashes",
			input:    "https://www.linkedin.com/in/jane-doe///",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLinkedInURL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("path case preserved", func(t *testing.T) {
		got, err := NormalizeLinkedInURL("https://www.linkedin.com/in/Jane-Doe")
		require.NoError(t, err)
		assert.Equal(t, "https://www.linkedin.com/in/Jane-Doe", got)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NormalizeLinkedInURL("")
		assert.ErrorIs(t, err, ErrEmptyLinkedInURL)
	})

	t.Run("whitespace only", func(t *testing.T) {
		_, err := NormalizeLinkedInURL("   ")
		assert.ErrorIs(t, err, ErrEmptyLinkedInURL)
	})

	t.Run("missing host", func(t *testing.T) {
		_, err := NormalizeLinkedInURL("https:///in/jane-doe")
		assert.ErrorIs(t, err, ErrInvalidLinkedInURL)
	})

	t.Run("unparseable URL", func(t *testing.T) {
		_, err := NormalizeLinkedInURL("https://www.linkedin.com/in/\x7f%zz")
		assert.Error(t, err)
	})

	t.Run("variants converge on one identity", func(t *testing.T) {
		variants := []string{
			"https://www.linkedin.com/in/jane-doe",
			"https://www.linkedin.com/in/jane-doe/",
			"https://WWW.LINKEDIN.COM/in/jane-doe?trk=x",
			"www.linkedin.com/in/jane-doe#top",
		}
		first, err := NormalizeLinkedInURL(variants[0])
		require.NoError(t, err)
		for _, v := range variants[1:] {
			got, err := NormalizeLinkedInURL(v)
			require.NoError(t, err)
			assert.Equal(t, first, got, "variant %q", v)
		}
	})
}
