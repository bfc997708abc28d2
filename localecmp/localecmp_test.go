package localecmp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Sykander/Iterable-Async-Methods/asyncslice"
	"github.com/Sykander/Iterable-Async-Methods/localecmp"
)

func TestCompare(t *testing.T) {
	c := localecmp.New(language.English)

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"Equal", "ada", "ada", 0},
		{"Less", "ada", "alan", -1},
		{"Greater", "grace", "barbara", 1},
		{"CaseIsSecondary", "alan", "Zed", -1},
		{"AccentBeforeNextLetter", "résumé", "rf", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_IgnoreCase(t *testing.T) {
	c := localecmp.New(language.English, collate.IgnoreCase)
	assert.Equal(t, 0, c.Compare("ADA@example.com", "ada@example.com"))
}

func TestParse(t *testing.T) {
	c, err := localecmp.Parse("sv-SE")
	require.NoError(t, err)
	assert.Equal(t, "sv-SE", c.Tag().String())

	_, err = localecmp.Parse("not a locale!")
	assert.Error(t, err)
}

func TestBy_SortsWithAsyncslice(t *testing.T) {
	type user struct{ email string }
	input := []user{{"Zed@example.com"}, {"grace@example.com"}, {"alan@example.com"}, {"ada@example.com"}}

	got, err := asyncslice.Sort(context.Background(), input, localecmp.By(localecmp.New(language.English), func(u user) string {
		return u.email
	}))

	require.NoError(t, err)
	assert.Equal(t, []user{{"ada@example.com"}, {"alan@example.com"}, {"grace@example.com"}, {"Zed@example.com"}}, got)
}
