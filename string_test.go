package lstd_test

import "testing"

func TestStringUtil(t *testing.T) {
	h := newHarness(t, nil)
	h.run(t, `
		local s = lstd.stringutil
		assert(s.len("héllo") == 5)
		assert(s.slice("héllo", 1, 4) == "hél")
		assert(s.slice("héllo", 1, 6) == "héllo")
		assert(s.slice("héllo", 3, 3) == "")
		assert(s.index("héllo", 2) == "é")
		assert(s.center("hi", 6, "*") == "**hi**")
		assert(s.center("hi", 5) == " hi  ")
		assert(s.count("aaaa", "aa") == 2)
		assert(s.find("héllo", "llo") == 3)
		assert(s.find("héllo", "x") == 0)
		assert(s.expandtabs("a\tb") == "a       b")
		assert(s.expandtabs("a\tb", 4) == "a   b")
		assert(s.capitalize("ßx") == "SSx")
		assert(s.contains("héllo", "él"))
		assert(s.endswith("héllo", "lo"))
		assert(s.isascii("hello") and not s.isascii("héllo"))
		assert(s.max("abc") == "c")
		assert(s.min("cab") == "a")
		assert(s.rep("ab", 3) == "ababab")
		assert(s.rep("ab", 0) == "")
		assert(s.reverse("héllo") == "olléh")
		assert(s.asciiletters == s.asciilowercase .. s.asciiuppercase)
	`)
}

func TestStringUtilBounds(t *testing.T) {
	h := newHarness(t, nil)
	h.run(t, `
		local s = lstd.stringutil
		local cases = {
			{s.slice, "héllo", 0, 2},
			{s.slice, "héllo", 3, 2},
			{s.slice, "héllo", 1, 7},
			{s.index, "héllo", 0},
			{s.index, "héllo", 6},
		}
		for i, c in ipairs(cases) do
			local ok, err = pcall(c[1], c[2], c[3], c[4])
			assert(not ok and err == "index out of bounds", i .. ": " .. tostring(err))
		end
	`)
}
