// Package alias classifies voicebank aliases into articulation types.
//
// Classification is a pure function of the alias and a lexicon.Dictionary.
// Patterns are tried in a fixed order and the first match wins:
//
//	"- さ", "- ka", "- k"   R-x  → rcv, rv or rc
//	"a -"                   x-R  → vr
//	"a i", "a い", "n あ"   V-V  → vv
//	"a ka", "n か"          V-CV → rejected, not supported
//	"a k", "n t"            V-C  → vc (ん takes the place of the next consonant)
//	"ka", "k a", "か"        C-V  → cv
//
// A trailing run of digits marks an alternative take and is ignored.
package alias

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ieee0824/oto2seg/lexicon"
)

// Type is the articulation shape a recorded unit encodes.
type Type string

const (
	RV  Type = "rv"  // silence to vowel
	RC  Type = "rc"  // silence to consonant
	RCV Type = "rcv" // silence to consonant-vowel
	VR  Type = "vr"  // vowel to silence
	VV  Type = "vv"  // vowel to vowel
	VC  Type = "vc"  // vowel to consonant
	CV  Type = "cv"  // consonant to vowel
)

var (
	ErrUnclassifiable     = errors.New("no alias pattern matched")
	ErrUnknownUnit        = errors.New("unit not in dictionary")
	ErrInvalidPhonemeInfo = errors.New("unit has an unexpected number of atoms")
	ErrVCVUnsupported     = errors.New("V-CV aliases are not supported")
)

// Error describes why an alias could not be classified.
type Error struct {
	Alias      string
	Pattern    string // grammar branch that was being resolved, if any
	Detail     string
	Suggestion string // closest known romaji key, if any
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "alias %q: ", e.Alias)
	if e.Pattern != "" {
		fmt.Fprintf(&b, "[%s] ", e.Pattern)
	}
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Classification is the resolved phonetic content of one alias.
type Classification struct {
	Type        Type
	Units       []lexicon.Unit
	Atoms       []lexicon.Atom
	Alternative bool
}

var (
	altSuffix   = regexp.MustCompile(`[0-9]+$`)
	latinRun    = regexp.MustCompile(`^[a-zA-Z ]+$`)
	vrVowel     = regexp.MustCompile(`^[aiueonN]$`)
	vvPattern   = regexp.MustCompile(`^([aiueoN]) ([aiueoN]|[あいうえおんアイウエオン])$`)
	nvPattern   = regexp.MustCompile(`^n ([あいうえおんアイウエオン])$`)
	vcvPattern  = regexp.MustCompile(`^([aiueonN]) ([a-zA-Z]+[aiueo]|[ぁ-ゔァ-・]+)$`)
	vcPattern   = regexp.MustCompile(`^([aiueonN]) ([a-zA-Z]+)$`)
	nvLatin     = regexp.MustCompile(`^n [aiueo]$`)
	cvPattern   = regexp.MustCompile(`^([a-zA-Z ]+ ?[aiueonN]|[ぁ-ゔァ-・]+)$`)
	latinVowels = regexp.MustCompile(`^[aiueoN]$`)
)

// classifier carries the alias being resolved so failures can name it.
type classifier struct {
	dict  *lexicon.Dictionary
	alias string
}

// Classify resolves alias against dict.
func Classify(dict *lexicon.Dictionary, alias string) (Classification, error) {
	c := classifier{dict: dict, alias: alias}
	s := strings.TrimSpace(alias)

	var alt bool
	if loc := altSuffix.FindStringIndex(s); loc != nil && loc[0] > 0 {
		alt = true
		s = strings.TrimSpace(s[:loc[0]])
	}

	var (
		res Classification
		err error
	)
	switch {
	case s == "":
		err = c.fail("", ErrUnclassifiable, "empty alias")
	case strings.HasPrefix(s, "-"):
		res, err = c.head(strings.TrimSpace(s[1:]))
	case strings.HasSuffix(s, "-"):
		res, err = c.tail(strings.TrimSpace(s[:len(s)-1]))
	case vvPattern.MatchString(s):
		m := vvPattern.FindStringSubmatch(s)
		res, err = c.vowelVowel(m[1], m[2])
	case nvPattern.MatchString(s):
		m := nvPattern.FindStringSubmatch(s)
		res, err = c.nasalVowel(m[1])
	case vcvPattern.MatchString(s):
		err = c.fail("V-CV", ErrVCVUnsupported, "")
	case vcPattern.MatchString(s) && !nvLatin.MatchString(s):
		m := vcPattern.FindStringSubmatch(s)
		res, err = c.vowelConsonant(m[1], m[2])
	case cvPattern.MatchString(s):
		res, err = c.consonantVowel(s)
	default:
		err = c.fail("", ErrUnclassifiable, "")
	}
	if err != nil {
		return Classification{}, err
	}
	res.Alternative = alt
	return res, nil
}

func (c classifier) fail(pattern string, err error, detail string) *Error {
	return &Error{Alias: c.alias, Pattern: pattern, Detail: detail, Err: err}
}

func (c classifier) unknown(pattern, key string) *Error {
	e := c.fail(pattern, ErrUnknownUnit, fmt.Sprintf("%q", key))
	if !lexicon.IsKana(key) {
		e.Suggestion = c.dict.Suggest(key)
	}
	return e
}

func (c classifier) invalid(pattern string, u lexicon.Unit) *Error {
	key := u.Kana
	if key == "" {
		key = u.Romaji
	}
	return c.fail(pattern, ErrInvalidPhonemeInfo, fmt.Sprintf("%q has %d atoms", key, len(u.Atoms)))
}

// head resolves an utterance-initial alias such as "- さ" or "- ka".
func (c classifier) head(rest string) (Classification, error) {
	const pattern = "R-x"
	if rest == "" {
		return Classification{}, c.fail(pattern, ErrUnclassifiable, "nothing after '-'")
	}

	var (
		u  lexicon.Unit
		ok bool
	)
	switch {
	case lexicon.IsKana(rest):
		u, ok = c.dict.Kana(rest)
	case latinRun.MatchString(rest):
		rest = strings.ReplaceAll(rest, " ", "")
		u, ok = c.dict.Romaji(rest)
	default:
		return Classification{}, c.fail(pattern, ErrUnclassifiable, "")
	}
	if !ok {
		return Classification{}, c.unknown(pattern, rest)
	}

	var t Type
	switch len(u.Atoms) {
	case 1:
		t = RC
		if lexicon.IsVowel(u.Atoms[0]) {
			t = RV
		}
	case 2:
		t = RCV
	default:
		return Classification{}, c.invalid(pattern, u)
	}
	return classified(t, u), nil
}

// tail resolves an utterance-final alias such as "a -".
func (c classifier) tail(rest string) (Classification, error) {
	const pattern = "x-R"
	if !vrVowel.MatchString(rest) {
		return Classification{}, c.fail(pattern, ErrUnclassifiable, fmt.Sprintf("%q is not a vowel", rest))
	}
	u, ok := c.dict.RomajiAs(rest, lexicon.Vowel, lexicon.NasalCoda)
	if !ok {
		return Classification{}, c.unknown(pattern, rest)
	}
	if len(u.Atoms) != 1 {
		return Classification{}, c.invalid(pattern, u)
	}
	return classified(VR, u), nil
}

// vowelVowel resolves "a i" or "a い".
func (c classifier) vowelVowel(first, second string) (Classification, error) {
	const pattern = "V-V"
	u1, ok := c.dict.RomajiAs(first, lexicon.Vowel, lexicon.NasalCoda)
	if !ok {
		return Classification{}, c.unknown(pattern, first)
	}
	var u2 lexicon.Unit
	if latinVowels.MatchString(second) {
		u2, ok = c.dict.RomajiAs(second, lexicon.Vowel, lexicon.NasalCoda)
	} else {
		u2, ok = c.dict.Kana(second)
	}
	if !ok {
		return Classification{}, c.unknown(pattern, second)
	}
	return c.pair(pattern, VV, u1, u2)
}

// nasalVowel resolves "n あ", a ん followed by a vowel.
func (c classifier) nasalVowel(vowel string) (Classification, error) {
	const pattern = "N-V"
	n, ok := c.dict.Kana("ん")
	if !ok {
		return Classification{}, c.unknown(pattern, "ん")
	}
	v, ok := c.dict.Kana(vowel)
	if !ok {
		return Classification{}, c.unknown(pattern, vowel)
	}
	return c.pair(pattern, VV, n, v)
}

// vowelConsonant resolves "a k", assimilating ん to the consonant's place.
func (c classifier) vowelConsonant(vowel, consonant string) (Classification, error) {
	const pattern = "V-C"
	v, ok := c.dict.RomajiAs(vowel, lexicon.Vowel, lexicon.NasalCoda)
	if !ok {
		return Classification{}, c.unknown(pattern, vowel)
	}
	k, ok := c.dict.RomajiAs(consonant, lexicon.Consonant)
	if !ok {
		return Classification{}, c.unknown(pattern, consonant)
	}
	if len(v.Atoms) != 1 {
		return Classification{}, c.invalid(pattern, v)
	}
	if len(k.Atoms) != 1 || k.Category != lexicon.Consonant {
		return Classification{}, c.invalid(pattern, k)
	}

	if v.Atoms[0] == lexicon.Moraic {
		v.Atoms = []lexicon.Atom{lexicon.AssimilateNasal(k.Atoms[0])}
	}
	return c.pair(pattern, VC, v, k)
}

// consonantVowel resolves "ka", "k a" or "か".
func (c classifier) consonantVowel(s string) (Classification, error) {
	const pattern = "C-V"
	var (
		u   lexicon.Unit
		ok  bool
		key string
	)
	if latinRun.MatchString(s) {
		key = strings.ReplaceAll(s, " ", "")
		u, ok = c.dict.Romaji(key)
	} else {
		key = s
		u, ok = c.dict.Kana(key)
	}
	if !ok {
		return Classification{}, c.unknown(pattern, key)
	}
	if len(u.Atoms) != 2 {
		return Classification{}, c.invalid(pattern, u)
	}
	return classified(CV, u), nil
}

func (c classifier) pair(pattern string, t Type, u1, u2 lexicon.Unit) (Classification, error) {
	if len(u1.Atoms) != 1 {
		return Classification{}, c.invalid(pattern, u1)
	}
	if len(u2.Atoms) != 1 {
		return Classification{}, c.invalid(pattern, u2)
	}
	return Classification{
		Type:  t,
		Units: []lexicon.Unit{u1, u2},
		Atoms: []lexicon.Atom{u1.Atoms[0], u2.Atoms[0]},
	}, nil
}

func classified(t Type, u lexicon.Unit) Classification {
	atoms := make([]lexicon.Atom, len(u.Atoms))
	copy(atoms, u.Atoms)
	return Classification{Type: t, Units: []lexicon.Unit{u}, Atoms: atoms}
}
