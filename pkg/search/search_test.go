package search

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/minigrep/pkg/flags"
)

const (
	poemDuct  = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape"
	poemTrust = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
)

func TestSearch_CaseSensitive(t *testing.T) {
	got := Search("duct", flags.Options{}, SplitLines(poemDuct))
	require.Equal(t, []LineRecord{{Index: 1, Text: "safe, fast, productive."}}, got)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := Search("rUsT", flags.Options{IgnoreCase: true}, SplitLines(poemTrust))
	require.Equal(t, []LineRecord{
		{Index: 0, Text: "Rust:"},
		{Index: 3, Text: "Trust me."},
	}, got)
}

func TestSearch_MaxCountKeepsFirstMatches(t *testing.T) {
	lines := SplitLines(poemTrust)

	got := Search("rust", flags.Options{IgnoreCase: true, MaxCount: 1}, lines)
	require.Equal(t, []LineRecord{{Index: 0, Text: "Rust:"}}, got)

	// the cap applies to matches, not to the first N lines of the file
	got = Search("me", flags.Options{MaxCount: 1}, lines)
	require.Equal(t, []LineRecord{{Index: 3, Text: "Trust me."}}, got)
}

func TestSearch_MaxCountLargerThanMatches(t *testing.T) {
	lines := SplitLines(poemTrust)
	unlimited := Search("t", flags.Options{}, lines)
	capped := Search("t", flags.Options{MaxCount: 100}, lines)
	require.Equal(t, unlimited, capped)
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	lines := SplitLines(poemDuct)
	require.Equal(t, lines, Search("", flags.Options{}, lines))
	require.Equal(t, lines[:2], Search("", flags.Options{MaxCount: 2}, lines))
}

func TestSearch_EmptyInput(t *testing.T) {
	require.Empty(t, Search("anything", flags.Options{}, nil))
	require.Empty(t, Search("", flags.Options{}, SplitLines("")))
}

func TestSearch_NoMatch(t *testing.T) {
	require.Empty(t, Search("monomorphization", flags.Options{IgnoreCase: true}, SplitLines(poemDuct)))
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	lines := SplitLines(poemTrust)
	before := append([]LineRecord(nil), lines...)
	_ = Search("RUST", flags.Options{IgnoreCase: true}, lines)
	require.Equal(t, before, lines)
}

// randomLines builds a deterministic corpus of short mixed-case lines.
func randomLines(r *rand.Rand, n int) []LineRecord {
	const alphabet = "abcABC xyz"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := r.Intn(12); j > 0; j-- {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
	}
	return SplitLines(sb.String())
}

func TestSearch_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	queries := []string{"", "a", "A", "ab", "Bc", "x z", "cab"}

	for round := 0; round < 50; round++ {
		lines := randomLines(r, 1+r.Intn(40))

		for _, query := range queries {
			for _, maxCount := range []uint{0, 1, 3} {
				sensitive := flags.Options{MaxCount: maxCount}
				insensitive := flags.Options{IgnoreCase: true, MaxCount: maxCount}

				got := Search(query, insensitive, lines)

				// file order, strictly increasing indices
				for i := 1; i < len(got); i++ {
					require.Less(t, got[i-1].Index, got[i].Index)
				}

				// bounded by input and by MaxCount
				require.LessOrEqual(t, len(got), len(lines))
				if maxCount != 0 {
					require.LessOrEqual(t, uint(len(got)), maxCount)
				}

				// idempotent
				require.Equal(t, got, Search(query, insensitive, lines))

				// each insensitive match is a lowercase containment
				for _, rec := range got {
					require.Contains(t, strings.ToLower(rec.Text), strings.ToLower(query))
				}

				// case-sensitive matching never finds more
				if maxCount == 0 {
					require.LessOrEqual(t, len(Search(query, sensitive, lines)), len(got))
				}
			}
		}
	}
}

func TestSearch_InsensitiveFindsEveryLowercaseMatch(t *testing.T) {
	lines := randomLines(rand.New(rand.NewSource(7)), 200)

	got := Search("aB", flags.Options{IgnoreCase: true}, lines)

	var want []LineRecord
	for _, rec := range lines {
		if strings.Contains(strings.ToLower(rec.Text), "ab") {
			want = append(want, rec)
		}
	}
	require.Equal(t, want, got)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []LineRecord
	}{
		{"empty", "", nil},
		{"single line no newline", "one", []LineRecord{{0, "one"}}},
		{"trailing newline", "one\ntwo\n", []LineRecord{{0, "one"}, {1, "two"}}},
		{"crlf", "one\r\ntwo\r\n", []LineRecord{{0, "one"}, {1, "two"}}},
		{"blank lines kept", "a\n\nb", []LineRecord{{0, "a"}, {1, ""}, {2, "b"}}},
		{"only newline", "\n", []LineRecord{{0, ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitLines(tt.content))
		})
	}
}

func TestFormat(t *testing.T) {
	rec := LineRecord{Index: 3, Text: "Trust me."}

	require.Equal(t, "Trust me.", Format(rec, Plain))
	require.Equal(t, "3:Trust me.", Format(rec, WithLineNumber))
	require.Equal(t, "0:", Format(LineRecord{}, WithLineNumber))
}

func TestLayoutFor(t *testing.T) {
	require.Equal(t, Plain, LayoutFor(flags.Options{IgnoreCase: true, MaxCount: 4}))
	require.Equal(t, WithLineNumber, LayoutFor(flags.Options{ShowLineNumber: true}))
}
