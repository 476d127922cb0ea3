package kana

// FlickChart returns the cursor chording chart modelled on smartphone flick
// input: a row key alone gives the a-column kana, and the row key pressed
// with left, up, right or down gives the i, u, e and o columns.
//
//	あいうえお  a alone / + cursors
//	ぁぃぅぇぉ  x+
//	かきくけこ  k+   (g s z t d n h b p m r likewise)
//	・・っ・・  xt+up only
//	や・ゆ・よ  y+   ゃ・ゅ・ょ xy+
//	わゐんゑを  w+   ん replaces the unused wu
//	・・ゔ・・  v+up only
//
// Multi-character rows are triggered by their first letter, so the x, xt
// and xy rows share the x key; their rules are disabled by default and the
// user enables the chords they want.
func FlickChart() *Chart {
	return NewChart(flickRows(), flickExceptions())
}

func flickRows() []Row {
	return []Row{
		{Key: "", Trigger: "a", Note: "vowels"},
		{Key: "x", Note: "small vowels"},
		{Key: "k"},
		{Key: "g"},
		{Key: "s"},
		{Key: "z"},
		{Key: "t"},
		{Key: "xt", Note: "small tsu"},
		{Key: "d"},
		{Key: "n"},
		{Key: "h"},
		{Key: "b"},
		{Key: "p"},
		{Key: "m"},
		{Key: "y"},
		{Key: "xy", Note: "small ya, yu, yo"},
		{Key: "r"},
		{Key: "w", Note: "ん in place of wu"},
		{Key: "v"},
	}
}

func flickExceptions() map[string]Exception {
	return map[string]Exception{
		"si":  Rewrite("shi"),
		"zi":  Rewrite("ji"),
		"ti":  Rewrite("chi"),
		"xta": Suppress(), // no small た
		"xti": Suppress(), // no small ち
		"xtu": Rewrite("xtsu"),
		"xte": Suppress(), // no small て
		"xto": Suppress(), // no small と
		"hu":  Rewrite("fu"),
		"yi":  Suppress(), // historical
		"ye":  Suppress(), // historical
		"xyi": Suppress(),
		"xye": Suppress(),
		"wi":  Rewrite("wyi"), // ゐ, names only
		"wu":  Rewrite("nn"),
		"we":  Rewrite("wye"), // ゑ, names only
		"va":  Suppress(), // only vu is a single kana
		"vi":  Suppress(),
		"ve":  Suppress(),
		"vo":  Suppress(),
	}
}
