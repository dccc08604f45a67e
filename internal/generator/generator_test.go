package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func containsAny(s, set string) bool {
	return strings.ContainsAny(s, set)
}

func TestGenerate_Composition(t *testing.T) {
	g := NewGenerator(0)

	for length := MinLength; length <= 64; length++ {
		for i := 0; i < 20; i++ {
			p, err := g.Generate(length)
			require.NoError(t, err)

			s := string(p)
			require.Len(t, s, length)
			assert.True(t, containsAny(s, Upper), "no uppercase in %q", s)
			assert.True(t, containsAny(s, Lower), "no lowercase in %q", s)
			assert.True(t, containsAny(s, Digits), "no digit in %q", s)
			assert.True(t, containsAny(s, Symbols), "no symbol in %q", s)

			for _, r := range s {
				assert.True(t, strings.ContainsRune(all, r), "unexpected character %q", r)
			}
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	g := NewGenerator(0)

	a, err := g.Generate(16)
	require.NoError(t, err)
	b, err := g.Generate(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// The guaranteed class members must not sit in the first four positions.
func TestGenerate_Shuffled(t *testing.T) {
	g := NewGenerator(0)

	ordered := 0
	for i := 0; i < 200; i++ {
		p, err := g.Generate(MinLength)
		require.NoError(t, err)

		s := string(p)
		if strings.ContainsRune(Upper, rune(s[0])) &&
			strings.ContainsRune(Lower, rune(s[1])) &&
			strings.ContainsRune(Digits, rune(s[2])) &&
			strings.ContainsRune(Symbols, rune(s[3])) {
			ordered++
		}
	}

	// 1 in 24 permutations is the class order; 200 draws never all land there
	assert.Less(t, ordered, 200)
}

func TestGenerate_Bounds(t *testing.T) {
	g := NewGenerator(0)

	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "zero", length: 0, wantErr: ErrLengthTooShort},
		{name: "negative", length: -5, wantErr: ErrLengthTooShort},
		{name: "three", length: 3, wantErr: ErrLengthTooShort},
		{name: "minimum", length: MinLength},
		{name: "maximum", length: MaxLength},
		{name: "above maximum", length: MaxLength + 1, wantErr: ErrLengthTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := g.Generate(tt.length)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, p)
				return
			}
			require.NoError(t, err)
			assert.Len(t, string(p), tt.length)
		})
	}
}

func TestGenerateDefault(t *testing.T) {
	p, err := NewGenerator(0).GenerateDefault()
	require.NoError(t, err)
	assert.Len(t, string(p), DefaultLength)

	p, err = NewGenerator(24).GenerateDefault()
	require.NoError(t, err)
	assert.Len(t, string(p), 24)
}

func TestGenerate_EntropyFailure(t *testing.T) {
	g := &passwordGenerator{rand: failingReader{}, defaultLength: DefaultLength}

	p, err := g.Generate(16)
	require.Error(t, err)
	assert.Empty(t, p)
}
