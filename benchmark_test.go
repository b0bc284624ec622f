package suftree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomSequence(n int, alphabet string, seed int64) []rune {
	rng := rand.New(rand.NewSource(seed))
	a := []rune(alphabet)
	s := make([]rune, n)
	for i := range s {
		s[i] = a[rng.Intn(len(a))]
	}
	return s
}

func benchAdd(b *testing.B, kind BuilderKind, n int) {
	s := randomSequence(n, "abcd", 42)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := New[rune, int]()
		require.NoError(b, tr.Add(0, s, WithBuilder(kind)))
	}
}

func BenchmarkAddNaive1k(b *testing.B)      { benchAdd(b, BuilderNaive, 1_000) }
func BenchmarkAddNaive4k(b *testing.B)      { benchAdd(b, BuilderNaive, 4_000) }
func BenchmarkAddMcCreight1k(b *testing.B)  { benchAdd(b, BuilderMcCreight, 1_000) }
func BenchmarkAddMcCreight4k(b *testing.B)  { benchAdd(b, BuilderMcCreight, 4_000) }
func BenchmarkAddMcCreight16k(b *testing.B) { benchAdd(b, BuilderMcCreight, 16_000) }
func BenchmarkAddUkkonen1k(b *testing.B)    { benchAdd(b, BuilderUkkonen, 1_000) }
func BenchmarkAddUkkonen4k(b *testing.B)    { benchAdd(b, BuilderUkkonen, 4_000) }
func BenchmarkAddUkkonen16k(b *testing.B)   { benchAdd(b, BuilderUkkonen, 16_000) }

func BenchmarkFind(b *testing.B) {
	s := randomSequence(16_000, "abcd", 42)
	tr := New[rune, int]()
	require.NoError(b, tr.Add(0, s))
	q := s[8_000:8_032]

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !tr.Find(q) {
			b.Fatal("query must occur")
		}
	}
}

func BenchmarkLCA(b *testing.B) {
	s := randomSequence(8_000, "abcd", 42)
	tr := New[rune, int]()
	require.NoError(b, tr.Add(0, s))
	tr.PrepareLCA()

	x, err := tr.Nodemap(0, 10)
	require.NoError(b, err)
	y, err := tr.Nodemap(0, 4_000)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tr.LCA(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
