package alias

import (
	"errors"
	"strings"
	"testing"

	"github.com/ieee0824/oto2seg/lexicon"
)

func TestClassify(t *testing.T) {
	dict := lexicon.Default()
	tests := []struct {
		alias string
		typ   Type
		atoms string
		alt   bool
	}{
		// R-x
		{"- さ", RCV, "s a", false},
		{"- サ", RCV, "s a", false},
		{"- ka", RCV, "k a", false},
		{"- k a", RCV, "k a", false},
		{"- あ", RV, "a", false},
		{"- a", RV, "a", false},
		{"- ん", RV, `N\`, false},
		{"- k", RC, "k", false},
		{"- sh", RC, "S", false},
		// x-R
		{"a -", VR, "a", false},
		{"u -", VR, "M", false},
		{"n -", VR, `N\`, false},
		{"N -", VR, `N\`, false},
		// V-V
		{"a i", VV, "a i", false},
		{"a い", VV, "a i", false},
		{"o ン", VV, `o N\`, false},
		{"N a", VV, `N\ a`, false},
		{"n あ", VV, `N\ a`, false},
		// V-C
		{"a k", VC, "a k", false},
		{"u ky", VC, "M k'", false},
		{"e sh", VC, "e S", false},
		{"o n", VC, "o n", false},
		{"i r", VC, "i 4", false},
		// ん before a consonant takes its place of articulation
		{"n t", VC, "n t", false},
		{"n p", VC, "m p", false},
		{"N k", VC, "N k", false},
		{"n ny", VC, "J J", false},
		{"n gy", VC, "N' g'", false},
		{"n s", VC, `N\ s`, false},
		// C-V
		{"ka", CV, "k a", false},
		{"k a", CV, "k a", false},
		{"n a", CV, "n a", false},
		{"shi", CV, "S i", false},
		{"か", CV, "k a", false},
		{"きゃ", CV, "k' a", false},
		{"ファ", CV, `p\ a`, false},
		// alternative takes
		{"ka2", CV, "k a", true},
		{"a k 12", VC, "a k", true},
		{"- さ3", RCV, "s a", true},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := Classify(dict, tt.alias)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.alias, err)
			}
			if got.Type != tt.typ {
				t.Errorf("Classify(%q).Type = %s, want %s", tt.alias, got.Type, tt.typ)
			}
			if a := lexicon.Join(got.Atoms); a != tt.atoms {
				t.Errorf("Classify(%q).Atoms = %q, want %q", tt.alias, a, tt.atoms)
			}
			if got.Alternative != tt.alt {
				t.Errorf("Classify(%q).Alternative = %v, want %v", tt.alias, got.Alternative, tt.alt)
			}
		})
	}
}

func TestClassifyFailures(t *testing.T) {
	dict := lexicon.Default()
	tests := []struct {
		alias string
		want  error
	}{
		{"", ErrUnclassifiable},
		{"-", ErrUnclassifiable},
		{"- x1y", ErrUnclassifiable},
		{"ka -", ErrUnclassifiable},
		{"- kx", ErrUnknownUnit},
		{"- ゑ", ErrUnknownUnit},
		{"a ka", ErrVCVUnsupported},
		{"a か", ErrVCVUnsupported},
		{"n ka", ErrVCVUnsupported},
		{"n か", ErrVCVUnsupported},
		{"N sha", ErrVCVUnsupported},
		{"a xq", ErrUnknownUnit},
		{"xa", ErrUnknownUnit},
		{"あ", ErrInvalidPhonemeInfo},
		{"wo", ErrInvalidPhonemeInfo},
		{"a b c", ErrUnclassifiable},
		{"!!", ErrUnclassifiable},
		{"123", ErrUnclassifiable},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := Classify(dict, tt.alias)
			if err == nil {
				t.Fatalf("Classify(%q) = %+v, want error", tt.alias, got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Classify(%q) error = %v, want %v", tt.alias, err, tt.want)
			}
			var ae *Error
			if !errors.As(err, &ae) || ae.Alias != tt.alias {
				t.Errorf("Classify(%q) error does not name the alias: %v", tt.alias, err)
			}
			if got.Type != "" || got.Atoms != nil {
				t.Errorf("Classify(%q) returned a partial result %+v", tt.alias, got)
			}
		})
	}
}

func TestClassifySuggestion(t *testing.T) {
	_, err := Classify(lexicon.Default(), "a shy")
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v", err)
	}
	if ae.Suggestion == "" {
		t.Error("expected a suggestion for a near-miss consonant")
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Errorf("message %q lacks suggestion", err.Error())
	}
}

func TestClassifyCustomDictionary(t *testing.T) {
	dict, err := lexicon.Load(strings.NewReader("か\tka\tk a\nあ\ta\ta\n-\tk\tk\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Classify(dict, "a k"); err != nil {
		t.Errorf("a k: %v", err)
	}
	if _, err := Classify(dict, "sa"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("sa: err = %v, want ErrUnknownUnit", err)
	}
}
