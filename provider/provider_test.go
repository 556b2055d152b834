package provider

import "testing"

func TestCanonicalizeLowercasesSpacesAndStripsApostrophes(t *testing.T) {
	cases := map[string]string{
		"Urshifu-Rapid-Strike": "urshifu-rapid-strike",
		"Farfetch'd":           "farfetchd",
		"Mr. Mime":             "mr.-mime",
		"landorus-therian":     "landorus-therian",
	}
	for input, want := range cases {
		if got := Canonicalize(input); got != want {
			t.Errorf("Canonicalize(%q) = %q, want %q", input, got, want)
		}
	}
}
