package token

import "testing"

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNormalizeDashes(t *testing.T) {
	got := Normalize("100–200 и 5—8")
	want := "100-200 и 5-8"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("от 100−200")
	twice := Normalize(once)
	if once != twice {
		t.Errorf("second Normalize changed text: %q vs %q", once, twice)
	}
}

func TestTokenizeWordsAndNumbers(t *testing.T) {
	tokens := Tokenize("зарплата 100 тыс")
	want := []string{"зарплата", "100", "тыс"}
	if !equalStrings(texts(tokens), want) {
		t.Fatalf("Tokenize = %v, want %v", texts(tokens), want)
	}
	if tokens[1].Kind != Number {
		t.Errorf("token %q kind = %v, want Number", tokens[1].Text, tokens[1].Kind)
	}
}

func TestTokenizeGroupedNumber(t *testing.T) {
	tokens := Tokenize("60,000 и 2.5")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens %v, want 3", len(tokens), texts(tokens))
	}
	if tokens[0].Text != "60,000" || tokens[0].Kind != Number {
		t.Errorf("first token = %+v, want Number 60,000", tokens[0])
	}
	if tokens[2].Text != "2.5" || tokens[2].Kind != Number {
		t.Errorf("last token = %+v, want Number 2.5", tokens[2])
	}
}

func TestTokenizeTrailingDotSplits(t *testing.T) {
	tokens := Tokenize("100. конец")
	want := []string{"100", ".", "конец"}
	if !equalStrings(texts(tokens), want) {
		t.Errorf("Tokenize = %v, want %v", texts(tokens), want)
	}
}

func TestTokenizeSymbolsAndPunct(t *testing.T) {
	tokens := Tokenize("$5k-$8k")
	want := []string{"$", "5", "k", "-", "$", "8", "k"}
	if !equalStrings(texts(tokens), want) {
		t.Fatalf("Tokenize = %v, want %v", texts(tokens), want)
	}
	wantKinds := []Kind{Symbol, Number, Word, Punct, Symbol, Number, Word}
	got := kinds(tokens)
	for i := range wantKinds {
		if got[i] != wantKinds[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], wantKinds[i])
		}
	}
}

func TestTokenizeOffsetsSliceOriginal(t *testing.T) {
	text := Normalize("от 60К до 300К грязными")
	for _, tok := range Tokenize(text) {
		if text[tok.Start:tok.Stop] != tok.Text {
			t.Errorf("offsets [%d:%d] slice %q, token text %q",
				tok.Start, tok.Stop, text[tok.Start:tok.Stop], tok.Text)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("empty input produced %d tokens", len(tokens))
	}
	if tokens := Tokenize("  \t\n  "); len(tokens) != 0 {
		t.Errorf("whitespace input produced %d tokens", len(tokens))
	}
}

func TestTokenizeNormLowercases(t *testing.T) {
	tokens := Tokenize("Senior Data Scientist")
	want := []string{"senior", "data", "scientist"}
	for i, tok := range tokens {
		if tok.Norm != want[i] {
			t.Errorf("token %d norm = %q, want %q", i, tok.Norm, want[i])
		}
	}
}

func TestTokenizeMixedCyrillicNumber(t *testing.T) {
	tokens := Tokenize("60К")
	want := []string{"60", "К"}
	if !equalStrings(texts(tokens), want) {
		t.Fatalf("Tokenize = %v, want %v", texts(tokens), want)
	}
	if tokens[0].Kind != Number || tokens[1].Kind != Word {
		t.Errorf("kinds = %v, want [Number Word]", kinds(tokens))
	}
}
