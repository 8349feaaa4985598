package chatbot

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims whitespace", in: "  Hello World  ", out: "hello world"},
		{name: "lowercases", in: "LIBRARY Hours", out: "library hours"},
		{name: "deletes punctuation", in: "What's the GPA?", out: "whats the gpa"},
		{name: "collapses runs", in: "tuition \t due\n\ndate", out: "tuition due date"},
		{name: "drops symbols and emoji", in: "wifi 📶 & portal!", out: "wifi portal"},
		{name: "digits survive", in: "Room 101", out: "room 101"},
		{name: "empty", in: "", out: ""},
		{name: "only punctuation", in: "?!...", out: ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  What ARE the admission requirements?! ",
		"café & restaurant",
		"",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
