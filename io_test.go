package lstd_test

import (
	"errors"
	"testing"
)

func TestStreamState(t *testing.T) {
	h := newHarness(t, nil)
	h.run(t, `
		for _, s in ipairs({lstd.io.stdout(), lstd.io.stderr()}) do
			assert(s:closed() == false)
			assert(s:readable() == false)
			assert(s:writable() == true)
			assert(s:tty() == false)
			s:close()
			assert(s:closed() == false)
		end
		assert(tostring(lstd.io.stdout()) == "stream(stdout)")
		assert(tostring(lstd.io.stderr()) == "stream(stderr)")
	`)
}

func TestStreamWrite(t *testing.T) {
	h := newHarness(t, nil)
	h.run(t, `
		local out = lstd.io.stdout()
		out:write("a", "b", "c")
		out:write()
		out:flush()
		lstd.io.stderr():write("e")
	`)
	if got := h.stdout.String(); got != "abc" {
		t.Errorf("stdout got %q", got)
	}
	if h.stdout.Writes != 1 {
		t.Errorf("expected one write call, got %d", h.stdout.Writes)
	}
	if h.stdout.Flushes != 1 {
		t.Errorf("expected one flush call, got %d", h.stdout.Flushes)
	}
	if got := h.stderr.String(); got != "e" {
		t.Errorf("stderr got %q", got)
	}
}

func TestStreamErrors(t *testing.T) {
	h := newHarness(t, nil)
	h.stdout.WriteErr = errors.New("epipe")
	h.stdout.FlushErr = errors.New("epipe")
	h.run(t, `
		local out = lstd.io.stdout()
		local ok, err = pcall(out.write, out, "x")
		assert(not ok and err == "couldn't write", tostring(err))
		ok, err = pcall(out.flush, out)
		assert(not ok and err == "couldn't flush", tostring(err))
	`)
}

func TestStreamTTY(t *testing.T) {
	h := newHarness(t, nil)
	h.stderr.Terminal = true
	h.run(t, `assert(lstd.io.stderr():tty() == true)`)
}

func TestStreamMethodNeedsStream(t *testing.T) {
	h := newHarness(t, nil)
	h.run(t, `
		local out = lstd.io.stdout()
		assert(not pcall(out.write, {}, "x"))
	`)
}
