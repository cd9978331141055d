package preprocess

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Breaking NEWS", "breaking news"},
		{"drops punctuation", "Breaking: markets rally on strong earnings!", "breaking markets rally on strong earnings"},
		{"collapses whitespace", "  one \t two\n\nthree  ", "one two three"},
		{"keeps digits", "GDP grew 3.2% in Q4", "gdp grew 3 2 in q4"},
		{"keeps non-latin letters", "Zprávy: Praha", "zprávy praha"},
		{"only punctuation", "?!...", ""},
		{"strips markup", "<p>Markets <b>rally</b></p><p>again</p>", "markets rally again"},
		{"drops scripts", "<div>Real</div><script>alert('x')</script>", "real"},
		{"lone angle bracket is text", "3 < 4 always", "3 4 always"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTMLPlainTextUntouched(t *testing.T) {
	in := "No markup here, just: punctuation."
	if got := StripHTML(in); got != in {
		t.Errorf("StripHTML(%q) = %q, want input unchanged", in, got)
	}
}
