package lexicon

// p is a shorthand to build an atom slice.
func p(as ...Atom) []Atom { return as }

// builtinUnits is the default hiragana / romaji / atom table.
// Consonant-only rows have no kana and are reachable by romaji only.
var builtinUnits = []struct {
	kana   string
	romaji string
	atoms  []Atom
}{
	// 母音
	{"あ", "a", p("a")},
	{"い", "i", p("i")},
	{"う", "u", p("M")},
	{"え", "e", p("e")},
	{"お", "o", p("o")},
	{"を", "wo", p("o")},
	// 撥音
	{"ん", "n", p(`N\`)},
	{"", "N", p(`N\`)},
	// カ行・ガ行
	{"か", "ka", p("k", "a")},
	{"き", "ki", p("k'", "i")},
	{"く", "ku", p("k", "M")},
	{"け", "ke", p("k", "e")},
	{"こ", "ko", p("k", "o")},
	{"きゃ", "kya", p("k'", "a")},
	{"きゅ", "kyu", p("k'", "M")},
	{"きぇ", "kye", p("k'", "e")},
	{"きょ", "kyo", p("k'", "o")},
	{"が", "ga", p("g", "a")},
	{"ぎ", "gi", p("g'", "i")},
	{"ぐ", "gu", p("g", "M")},
	{"げ", "ge", p("g", "e")},
	{"ご", "go", p("g", "o")},
	{"ぎゃ", "gya", p("g'", "a")},
	{"ぎゅ", "gyu", p("g'", "M")},
	{"ぎぇ", "gye", p("g'", "e")},
	{"ぎょ", "gyo", p("g'", "o")},
	// サ行・ザ行
	{"さ", "sa", p("s", "a")},
	{"し", "shi", p("S", "i")},
	{"す", "su", p("s", "M")},
	{"せ", "se", p("s", "e")},
	{"そ", "so", p("s", "o")},
	{"すぃ", "si", p("s", "i")},
	{"しゃ", "sha", p("S", "a")},
	{"しゅ", "shu", p("S", "M")},
	{"しぇ", "she", p("S", "e")},
	{"しょ", "sho", p("S", "o")},
	{"ざ", "za", p("dz", "a")},
	{"じ", "ji", p("dZ", "i")},
	{"ず", "zu", p("dz", "M")},
	{"ぜ", "ze", p("dz", "e")},
	{"ぞ", "zo", p("dz", "o")},
	{"ずぃ", "zi", p("dz", "i")},
	{"じゃ", "ja", p("dZ", "a")},
	{"じゅ", "ju", p("dZ", "M")},
	{"じぇ", "je", p("dZ", "e")},
	{"じょ", "jo", p("dZ", "o")},
	// タ行・ダ行
	{"た", "ta", p("t", "a")},
	{"ち", "chi", p("tS", "i")},
	{"つ", "tsu", p("ts", "M")},
	{"て", "te", p("t", "e")},
	{"と", "to", p("t", "o")},
	{"てぃ", "ti", p("t'", "i")},
	{"とぅ", "tu", p("t", "M")},
	{"てゅ", "tyu", p("t'", "M")},
	{"ちゃ", "cha", p("tS", "a")},
	{"ちゅ", "chu", p("tS", "M")},
	{"ちぇ", "che", p("tS", "e")},
	{"ちょ", "cho", p("tS", "o")},
	{"つぁ", "tsa", p("ts", "a")},
	{"つぃ", "tsi", p("ts", "i")},
	{"つぇ", "tse", p("ts", "e")},
	{"つぉ", "tso", p("ts", "o")},
	{"だ", "da", p("d", "a")},
	{"ぢ", "", p("dZ", "i")},
	{"づ", "", p("dz", "M")},
	{"で", "de", p("d", "e")},
	{"ど", "do", p("d", "o")},
	{"でぃ", "di", p("d'", "i")},
	{"どぅ", "du", p("d", "M")},
	{"でゅ", "dyu", p("d'", "M")},
	// ナ行
	{"な", "na", p("n", "a")},
	{"に", "ni", p("J", "i")},
	{"ぬ", "nu", p("n", "M")},
	{"ね", "ne", p("n", "e")},
	{"の", "no", p("n", "o")},
	{"にゃ", "nya", p("J", "a")},
	{"にゅ", "nyu", p("J", "M")},
	{"にぇ", "nye", p("J", "e")},
	{"にょ", "nyo", p("J", "o")},
	// ハ行・バ行・パ行
	{"は", "ha", p("h", "a")},
	{"ひ", "hi", p("C", "i")},
	{"ふ", "fu", p(`p\`, "M")},
	{"へ", "he", p("h", "e")},
	{"ほ", "ho", p("h", "o")},
	{"ひゃ", "hya", p("C", "a")},
	{"ひゅ", "hyu", p("C", "M")},
	{"ひぇ", "hye", p("C", "e")},
	{"ひょ", "hyo", p("C", "o")},
	{"ふぁ", "fa", p(`p\`, "a")},
	{"ふぃ", "fi", p(`p\'`, "i")},
	{"ふぇ", "fe", p(`p\`, "e")},
	{"ふぉ", "fo", p(`p\`, "o")},
	{"ふゅ", "fyu", p(`p\'`, "M")},
	{"ば", "ba", p("b", "a")},
	{"び", "bi", p("b'", "i")},
	{"ぶ", "bu", p("b", "M")},
	{"べ", "be", p("b", "e")},
	{"ぼ", "bo", p("b", "o")},
	{"びゃ", "bya", p("b'", "a")},
	{"びゅ", "byu", p("b'", "M")},
	{"びぇ", "bye", p("b'", "e")},
	{"びょ", "byo", p("b'", "o")},
	{"ぱ", "pa", p("p", "a")},
	{"ぴ", "pi", p("p'", "i")},
	{"ぷ", "pu", p("p", "M")},
	{"ぺ", "pe", p("p", "e")},
	{"ぽ", "po", p("p", "o")},
	{"ぴゃ", "pya", p("p'", "a")},
	{"ぴゅ", "pyu", p("p'", "M")},
	{"ぴぇ", "pye", p("p'", "e")},
	{"ぴょ", "pyo", p("p'", "o")},
	// マ行
	{"ま", "ma", p("m", "a")},
	{"み", "mi", p("m'", "i")},
	{"む", "mu", p("m", "M")},
	{"め", "me", p("m", "e")},
	{"も", "mo", p("m", "o")},
	{"みゃ", "mya", p("m'", "a")},
	{"みゅ", "myu", p("m'", "M")},
	{"みぇ", "mye", p("m'", "e")},
	{"みょ", "myo", p("m'", "o")},
	// ヤ行・ワ行
	{"や", "ya", p("j", "a")},
	{"ゆ", "yu", p("j", "M")},
	{"いぇ", "ye", p("j", "e")},
	{"よ", "yo", p("j", "o")},
	{"わ", "wa", p("w", "a")},
	{"うぃ", "wi", p("w", "i")},
	{"うぇ", "we", p("w", "e")},
	// ラ行
	{"ら", "ra", p("4", "a")},
	{"り", "ri", p("4'", "i")},
	{"る", "ru", p("4", "M")},
	{"れ", "re", p("4", "e")},
	{"ろ", "ro", p("4", "o")},
	{"りゃ", "rya", p("4'", "a")},
	{"りゅ", "ryu", p("4'", "M")},
	{"りぇ", "rye", p("4'", "e")},
	{"りょ", "ryo", p("4'", "o")},

	// 子音のみ (VC の後半)
	{"", "k", p("k")},
	{"", "ky", p("k'")},
	{"", "g", p("g")},
	{"", "gy", p("g'")},
	{"", "ng", p("N")},
	{"", "ngy", p("N'")},
	{"", "s", p("s")},
	{"", "sh", p("S")},
	{"", "z", p("dz")},
	{"", "j", p("dZ")},
	{"", "t", p("t")},
	{"", "ty", p("t'")},
	{"", "ts", p("ts")},
	{"", "ch", p("tS")},
	{"", "d", p("d")},
	{"", "dy", p("d'")},
	{"", "n", p("n")},
	{"", "ny", p("J")},
	{"", "h", p("h")},
	{"", "hy", p("C")},
	{"", "f", p(`p\`)},
	{"", "fy", p(`p\'`)},
	{"", "b", p("b")},
	{"", "by", p("b'")},
	{"", "p", p("p")},
	{"", "py", p("p'")},
	{"", "m", p("m")},
	{"", "my", p("m'")},
	{"", "y", p("j")},
	{"", "w", p("w")},
	{"", "r", p("4")},
	{"", "ry", p("4'")},
}

// foldKana maps katakana to hiragana so both scripts share one index.
func foldKana(s string) string {
	runes := []rune(s)
	changed := false
	for i, r := range runes {
		if r >= 'ァ' && r <= 'ヶ' {
			runes[i] = r - 0x60
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(runes)
}

// IsKana reports whether every rune of s is hiragana or katakana.
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'ぁ' && r <= 'ゔ') && !(r >= 'ァ' && r <= 'ヺ') && r != 'ー' {
			return false
		}
	}
	return true
}
