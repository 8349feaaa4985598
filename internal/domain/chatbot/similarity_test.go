package chatbot

import "testing"

func TestMatchRatio(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "library hours", b: "library hours", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "library", b: "", want: 0.0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0.0},
	}

	for _, tc := range cases {
		if got := matchRatio(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestMatchRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"when is tuition due", "what financial aid is available"},
		{"a", "aaaa"},
		{"how do i register for classes", "class registration"},
		{"xyzzy plugh quux", "what are library hours"},
	}
	for _, p := range pairs {
		got := matchRatio(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Fatalf("ratio out of range for %q vs %q: %v", p[0], p[1], got)
		}
		if got == 1.0 && p[0] != p[1] {
			t.Fatalf("ratio 1.0 for non-identical strings %q vs %q", p[0], p[1])
		}
	}
}

func TestMatchRatioPartialOverlap(t *testing.T) {
	// shared "ab" block out of 4+4 chars gives 2*2/8
	if got := matchRatio("abcd", "abxy"); got != 0.5 {
		t.Fatalf("expected 0.5 got %v", got)
	}
}

func TestScoreCaseAndPunctuationInvariant(t *testing.T) {
	cfg := DefaultConfig()
	question := "What are the admission requirements?"
	keywords := []string{"admission", "requirements", "apply"}

	base := Score(cfg, "what are the admission requirements", question, keywords)
	variants := []string{
		"What are the admission requirements?",
		"WHAT ARE THE ADMISSION REQUIREMENTS!!!",
		"  what are the admission requirements.  ",
	}
	for _, v := range variants {
		if got := Score(cfg, v, question, keywords); got != base {
			t.Fatalf("variant %q scored %v, want %v", v, got, base)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	cfg := DefaultConfig()
	for _, rec := range SeedRecords() {
		for _, query := range []string{"", "library", "when is tuition due", "xyzzy plugh quux"} {
			got := Score(cfg, query, rec.Question, rec.Keywords)
			if got < 0.0 || got > 1.0 {
				t.Fatalf("score out of range for %q vs %q: %v", query, rec.Question, got)
			}
		}
	}
}

func TestScoreExactQuestionAndKeywords(t *testing.T) {
	cfg := DefaultConfig()
	query := "library hours"
	got := Score(cfg, query, "library hours", []string{"library", "hours"})
	if got != 1.0 {
		t.Fatalf("expected 1.0 got %v", got)
	}
}

func TestKeywordOverlapAsymmetric(t *testing.T) {
	// unmatched keyword tokens do not reduce the score
	few := keywordOverlap("library hours", "library hours")
	many := keywordOverlap("library hours", "library hours schedule finals holiday")
	if few != many {
		t.Fatalf("extra keywords changed the score: %v vs %v", few, many)
	}
	if few != 1.0 {
		t.Fatalf("expected full overlap 1.0 got %v", few)
	}
}

func TestKeywordOverlapEmptyQuery(t *testing.T) {
	if got := keywordOverlap("", "library hours"); got != 0.0 {
		t.Fatalf("expected 0.0 got %v", got)
	}
}

func TestKeywordOverlapDuplicatesCollapse(t *testing.T) {
	single := keywordOverlap("library", "library hours")
	repeated := keywordOverlap("library library library", "library hours")
	if single != repeated {
		t.Fatalf("duplicate query tokens changed the score: %v vs %v", single, repeated)
	}
}
