package suftree

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderEquivalenceFuzz is the randomized counterpart of
// TestBuilderEquivalence: over random sequences of random length drawn from
// the two-symbol alphabet {a, b}, Naive, McCreight and Ukkonen must agree on
// Find for the sequence's prefixes of length 1 to 4.
func TestBuilderEquivalenceFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 40)
	alphabet := []rune("ab")

	for trial := 0; trial < 50; trial++ {
		var n int
		f.Fuzz(&n)
		n %= 60
		if n < 0 {
			n += 60
		}
		n++

		s := make([]rune, n)
		for i := range s {
			var x int
			f.Fuzz(&x)
			if x < 0 {
				x = -x
			}
			s[i] = alphabet[x%len(alphabet)]
		}

		var queries [][]rune
		for _, qlen := range []int{1, 2, 3, 4} {
			if qlen <= n {
				queries = append(queries, s[:qlen])
			}
		}

		var reference []bool
		for kIdx, kind := range []BuilderKind{BuilderNaive, BuilderMcCreight, BuilderUkkonen} {
			tr := New[rune, string]()
			require.NoError(t, tr.Add("A", s, WithBuilder(kind)))

			var results []bool
			for _, q := range queries {
				results = append(results, tr.Find(q))
			}

			if kIdx == 0 {
				reference = results
			} else {
				assert.Equal(t, reference, results, "builders disagree for input %q", string(s))
			}
		}
	}
}
