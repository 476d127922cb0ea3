package layout

import (
	"unicode/utf8"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
)

// unused marks a cell with no character.
const unused = "❌"

// keyTable splits keyboard rows into one string per character.
func keyTable(rows ...string) []string {
	var cells []string
	for _, row := range rows {
		for len(row) > 0 {
			_, size := utf8.DecodeRuneInString(row)
			cells = append(cells, row[:size])
			row = row[size:]
		}
	}
	return cells
}

// stickneyRows are the key counts of the four character rows.
var stickneyRows = []int{13, 12, 12, 11}

// As typed on a Japanese MacBook.
var (
	jisQwerty = keyTable(
		"1234567890-^¥",
		"qwertyuiop@[",
		"asdfghjkl;:]",
		"zxcvbnm,./_",
	)
	jisQwertyShifted = keyTable(
		"!\"#$%&'()0=~|",
		"QWERTYUIOP`{",
		"ASDFGHJKL+*}",
		"ZXCVBNM<>?_",
	)
)

// The same keys in macOS kana input mode.
var (
	jisKanaNormal = keyTable(
		"ぬふあうえおやゆよわほへー",
		"たていすかんなにらせ゛゜",
		"ちとしはきくまのりれけむ",
		"つさそひこみもねるめろ",
	)
	jisKanaShift = keyTable(
		"❌❌ぁぅぇぉゃゅょを❌❌❌",
		"❌❌ぃ❌❌❌❌❌❌❌❌「",
		"❌❌❌❌❌❌❌❌❌❌❌」",
		"っ❌❌❌❌❌❌、。・❌",
	)
	// Option gives full-width ASCII, except where macOS takes it as a
	// shortcut (R, A, S, Z, X, C).
	jisKanaShiftOption = keyTable(
		"！＂＃＄％＆＇（）０＝〜｜",
		"ＱＷＥ❌ＴＹＵＩＯＰ｀｛",
		"❌❌ＤＦＧＨＪＫＬ＋＊｝",
		"❌❌❌ＶＢＮＭ＜＞？＿",
	)
	jisKanaFnOption = keyTable(
		"１２３４５６７８９０－＾￥",
		"ｑｗｅｒｔｙｕｉｏｐ＠［",
		"ａｓｄｆｇｈｊｋｌ；：］",
		"ｚｘｃｖｂｎｍ、。・＿",
	)
)

// New Stickney as laid out on a JIS keyboard. The number row sends
// full-width digits and symbols. The home row wide space is the 変換 key.
var (
	stickneyNormal = keyTable(
		"１２３４５６７８９０－＾￥",
		"けくすさつぬおのにね❌「",
		"はかしたてらうい゛な　」",
		"よきことちっん、。・＿",
	)
	stickneyShift = keyTable(
		"！＂＃＄％＆＇（）－＝〜｜",
		"❌゜ひふ❌むえもみめ…『",
		"やそせへほれるりあま　』",
		"ゆゐ❌ゑ❌ろーをわ？＿",
	)
)

// keyNames maps JIS characters to key codes where they differ.
var keyNames = map[string]string{
	// These two differ between JIS and ANSI/ISO.
	"¥": "international3",
	"_": "international1",
	// QWERTYUIOP@[ on JIS, QWERTYUIOP[] on ANSI and ISO.
	"@": "open_bracket",
	"[": "close_bracket",
	// ASDFGHJKL;:] on JIS.
	"]": "backslash",
	// Shared by JIS, ANSI and ISO.
	"-": "hyphen",
	"^": "equal_sign",
	";": "semicolon",
	":": "quote",
	",": "comma",
	".": "period",
	"/": "slash",
	" ": "spacebar",
}

// keyName returns the key code for a JIS character.
func keyName(c string) string {
	if name, ok := keyNames[c]; ok {
		return name
	}
	return c
}

// noOp is sent for characters macOS kana mode cannot type. A bare halt is
// rejected by Karabiner-Elements, so it sets a throwaway variable instead.
var noOp = karabiner.SetVar("kogaki", "")

// kanaFallback covers characters on no JIS kana mode key.
var kanaFallback = map[string]karabiner.ToEvent{
	"ゐ": noOp, // obsolete, wyi in romaji
	"ゑ": noOp, // obsolete, wye in romaji
	"　": karabiner.Key("spacebar"),
	"…": noOp,
	"『": noOp,
	"』": noOp,
}

// isoANSIAlternates are what to press on ANSI/ISO virtual keyboards for
// characters whose JIS key is missing or moved there.
var isoANSIAlternates = map[string]karabiner.ToEvent{
	"ろ": karabiner.Key("quote", "shift"),
	"゜": karabiner.Key("equal_sign"),
	"「": karabiner.Key("equal_sign", "shift"),
	"」": karabiner.Key("open_bracket", "shift"),
	"ー": karabiner.Key("hyphen", "option"),
	"＿": karabiner.Key("hyphen", "shift", "option"),
	"￥": karabiner.Key("non_us_pound", "option"),
	"｜": karabiner.Key("non_us_pound", "shift", "option"),
	"〜": karabiner.Key("non_us_backslash", "shift"),
}

// isoKey is a key found on ISO keyboards but not JIS, given the unshifted
// New Stickney character of the JIS key it stands in for.
type isoKey struct {
	code string
	kana string
}

var isoKeys = []isoKey{
	{"non_us_pound", "」"},           // between quote and enter, shaped like the JIS enter notch
	{"non_us_backslash", "＿"},       // between left shift and Z, like JIS ろ
	{"grave_accent_and_tilde", "￥"}, // top left, like the JIS top right ¥
}
