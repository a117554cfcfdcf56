package lexicon

import "strings"

var escapeReplacer = strings.NewReplacer(
	`\`, "-",
	"/", "~",
	"?", "!",
	":", ";",
	"<", "(",
	">", ")",
)

var unescapeReplacer = strings.NewReplacer(
	"-", `\`,
	"~", "/",
	"!", "?",
	";", ":",
	"(", "<",
	")", ">",
)

// Escape makes an atom safe for use in a file name. Uppercase ASCII letters
// become lowercase followed by '#', so names stay unique on case-insensitive
// filesystems.
func Escape(a Atom) string {
	if a == Sil {
		return "sil"
	}
	s := escapeReplacer.Replace(string(a))
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte(c + ('a' - 'A'))
			b.WriteByte('#')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Unescape reverses Escape.
func Unescape(name string) Atom {
	if name == "sil" {
		return Sil
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' && i+1 < len(name) && name[i+1] == '#' {
			b.WriteByte(c - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return Atom(unescapeReplacer.Replace(b.String()))
}
