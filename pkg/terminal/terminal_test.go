package terminal

import (
	"os"
	"testing"
)

// envMap builds an Env from key/value pairs.
func envMap(kv ...string) Env {
	m := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return func(k string) string { return m[k] }
}

// --- Terminal Detection Tests ---

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want Terminal
	}{
		{"ghostty program", envMap("TERM_PROGRAM", "ghostty"), TermGhostty},
		{"ghostty term", envMap("TERM", "xterm-ghostty"), TermGhostty},
		{"kitty term", envMap("TERM", "xterm-kitty"), TermKitty},
		{"kitty window", envMap("KITTY_WINDOW_ID", "3"), TermKitty},
		{"iterm", envMap("TERM_PROGRAM", "iTerm.app"), TermITerm2},
		{"iterm over ssh", envMap("LC_TERMINAL", "iTerm2"), TermITerm2},
		{"wezterm", envMap("WEZTERM_EXECUTABLE", "/usr/bin/wezterm"), TermWezTerm},
		{"alacritty", envMap("TERM", "alacritty"), TermAlacritty},
		{"vte", envMap("VTE_VERSION", "7600"), TermVTE},
		{"vscode", envMap("TERM_PROGRAM", "vscode"), TermVSCode},
		{"tmux", envMap("TMUX", "/tmp/tmux-1000/default,1,0"), TermTmux},
		{"program wins over tmux", envMap("TERM_PROGRAM", "kitty", "TMUX", "x"), TermKitty},
		{"screen", envMap("STY", "1234.pts-0"), TermScreen},
		{"nothing", envMap(), TermGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFrom(tt.env); got != tt.want {
				t.Errorf("DetectFrom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalString(t *testing.T) {
	if TermWezTerm.String() != "wezterm" {
		t.Errorf("String() = %q", TermWezTerm.String())
	}
	if Terminal(99).String() != "unknown" {
		t.Errorf("out of range String() = %q", Terminal(99).String())
	}
}

// --- Protocol Tests ---

func TestSelectProtocol(t *testing.T) {
	tests := []struct {
		term Terminal
		ssh  bool
		want Protocol
	}{
		{TermKitty, false, ProtocolKitty},
		{TermGhostty, false, ProtocolKitty},
		{TermITerm2, false, ProtocolITerm2},
		{TermAlacritty, false, ProtocolHalfblocks},
		{TermGeneric, false, ProtocolBraille},
		{TermKitty, true, ProtocolBraille},
	}
	for _, tt := range tests {
		if got := SelectProtocol(tt.term, tt.ssh); got != tt.want {
			t.Errorf("SelectProtocol(%v, ssh=%v) = %v, want %v", tt.term, tt.ssh, got, tt.want)
		}
	}
}

func TestParseProtocol(t *testing.T) {
	if _, ok, err := ParseProtocol("auto"); ok || err != nil {
		t.Errorf("auto: ok=%v err=%v", ok, err)
	}
	if p, ok, err := ParseProtocol("Sixel"); !ok || err != nil || p != ProtocolSixel {
		t.Errorf("Sixel: %v %v %v", p, ok, err)
	}
	if p, ok, _ := ParseProtocol("off"); !ok || p != ProtocolNone {
		t.Errorf("off: %v %v", p, ok)
	}
	if _, _, err := ParseProtocol("hologram"); err == nil {
		t.Error("expected error for unknown protocol")
	}
}

func TestProtocolIsImage(t *testing.T) {
	if !ProtocolKitty.IsImage() || !ProtocolHalfblocks.IsImage() {
		t.Error("image protocols not reported as images")
	}
	if ProtocolBraille.IsImage() || ProtocolNone.IsImage() {
		t.Error("text protocols reported as images")
	}
}

func TestResolve(t *testing.T) {
	env := envMap("TERM_PROGRAM", "kitty")
	if got := resolve(env, true, "").Protocol; got != ProtocolKitty {
		t.Errorf("interactive kitty = %v", got)
	}
	if got := resolve(env, false, "").Protocol; got != ProtocolBraille {
		t.Errorf("piped kitty = %v, want braille", got)
	}
	if got := resolve(env, false, "halfblocks").Protocol; got != ProtocolHalfblocks {
		t.Errorf("override = %v, want halfblocks", got)
	}
	if !resolve(envMap("SSH_TTY", "/dev/pts/1"), true, "").SSH {
		t.Error("SSH not detected")
	}
}

func TestInspectRejectsUnknownOverride(t *testing.T) {
	if _, err := Inspect(os.Stdout, "hologram"); err == nil {
		t.Error("expected error")
	}
}

// --- Size Tests ---

func TestSizeFromEnv(t *testing.T) {
	s := sizeFromEnv(envMap("COLUMNS", "120", "LINES", "40"))
	if s.Cols != 120 || s.Rows != 40 {
		t.Errorf("size = %+v", s)
	}
	s = sizeFromEnv(envMap("COLUMNS", "-3", "LINES", "x"))
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("fallback size = %+v, want 80x24", s)
	}
}

func TestContainerWidth(t *testing.T) {
	tests := []struct {
		size Size
		want int
	}{
		{Size{Cols: 100, Rows: 30}, 800},
		{Size{Cols: 100, Rows: 30, PixelW: 1000, PixelH: 600}, 1000},
	}
	for _, tt := range tests {
		if got := tt.size.ContainerWidth(); got != tt.want {
			t.Errorf("ContainerWidth(%+v) = %d, want %d", tt.size, got, tt.want)
		}
	}
	w, h := Size{Cols: 100, Rows: 30, PixelW: 1000, PixelH: 600}.CellSize()
	if w != 10 || h != 20 {
		t.Errorf("CellSize = %dx%d, want 10x20", w, h)
	}
}
