package layout

// leave marks a key that keeps its JIS meaning.
const leave = "🔻"

// jisKeys are the Karabiner key codes of a JIS MacBook keyboard, excluding
// the function row, backspace, enter, globe/fn and the cursor keys.
var jisKeys = [...]string{
	// Number row
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"hyphen", "equal_sign", "international3",
	// Top row
	"tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p",
	"open_bracket", "close_bracket",
	// Home row
	"left_control", // caps lock on ANSI/ISO
	"a", "s", "d", "f", "g", "h", "j", "k", "l",
	"semicolon", "quote", "backslash",
	// Bottom row
	"left_shift",
	"z", "x", "c", "v", "b", "n", "m",
	"comma", "period", "slash", "international1",
	"right_shift",
	// Thumb row
	"caps_lock", "left_option", "left_command",
	"japanese_eisuu", "spacebar", "japanese_kana", "right_command",
}

// handsDownKeys places Hands Down Promethium on jisKeys. The left hand
// keeps the usual home keys; the right hand moves two columns over to
// start at L ("wide mod"), and the 2-2-3 block between the hands takes
// the punctuation from the right.
var handsDownKeys = [...]string{
	// Number row
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"international3", // ` and ¬ in British PC
	"z",              // right pinkie sixth column in canonical HDP
	"q",              // right pinkie sixth column in canonical HDP
	// Top row
	leave, // tab
	"v", "p", "g", "m", "x",
	"open_bracket",  // @ and ` on JIS
	"close_bracket", // [ and { on JIS
	"slash", "period", "quote", "hyphen", "equal_sign",
	// Home row
	leave, // left_control
	"s", "n", "t", "h", "k",
	"quote",     // : and * on JIS
	"backslash", // ] and } on JIS
	"comma", "a", "e", "i", "c",
	// Bottom row
	"b", "f", "d", "l", "j",
	"caps_lock",
	"international1", // _ on JIS
	"international3", // ¥ and | on JIS
	"semicolon", "u", "o", "y", "w",
	// Thumb row
	"left_shift",
	leave, // left_option
	leave, // left_command
	"r",
	"delete_or_backspace",
	"right_shift",
	"spacebar",
}

// navigationVariable is set while globe/fn is held.
const navigationVariable = "navigation_layer"

// navigationKeys is the layer under globe/fn: a phone-style number pad
// under the left hand and cursor keys under the right.
// S(key) adds left shift, A(key) adds left option.
var navigationKeys = [...]string{
	// Number row
	leave, leave, leave, leave, leave, leave, leave, leave, leave, leave,
	leave, leave, leave,
	// Top row
	"4", "5", "6",
	"S(3)", // #
	"S(4)", // $
	"S(5)", // %
	leave, leave,
	"escape", "home", "up_arrow", "end", "delete_or_backspace",
	// Home row
	"7", "8", "9",
	"international1", // backslash with British PC
	"S(quote)",       // @ with British PC
	"S(6)",           // ^
	leave, leave,
	"page_up", "left_arrow", "down_arrow", "right_arrow", "q",
	// Bottom row
	"0",
	"S(international1)", // |
	"S(backslash)",      // ~
	"backslash",         // #
	"S(7)",              // &
	leave, leave, leave,
	"page_down", "A(left_arrow)", "return_or_enter", "A(right_arrow)", "z",
	// Thumb row
	leave, leave, leave, leave, leave, leave, leave,
}

// combo is a chord of JIS keys producing one key.
type combo struct {
	keys []string
	to   string
}

var handsDownCombos = []combo{
	{[]string{"r", "t"}, "S(open_bracket)"},        // {
	{[]string{"f", "g"}, "S(9)"},                   // (
	{[]string{"c", "v"}, "open_bracket"},           // [
	{[]string{"i", "o"}, "S(close_bracket)"},       // }
	{[]string{"k", "l"}, "S(0)"},                   // )
	{[]string{"comma", "period"}, "close_bracket"}, // ]
	{[]string{"l", "period"}, "S(1)"},              // !
	{[]string{"l", "o"}, "S(slash)"},               // ?
	{[]string{"backslash", "right_shift"}, "q"},
	{[]string{"quote", "international1"}, "z"},
	{[]string{"s", "d", "f"}, "escape"},
	{[]string{"z", "x", "c"}, "tab"},
	{[]string{"l", "semicolon", "quote"}, "delete_or_backspace"},
	{[]string{"period", "slash", "international1"}, "return_or_enter"},
}

// Keys gained and lost by the remap, used by the coverage check.
var (
	handsDownGained = []string{"delete_or_backspace"}
	handsDownLost   = []string{"japanese_eisuu", "japanese_kana", "right_command"}
)

// keyboardRows splits the 59 key tables for previews.
var keyboardRows = []int{13, 13, 13, 13, 7}
