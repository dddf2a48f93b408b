package terminal

import (
	"fmt"
	"strings"
)

// Protocol identifies how a chart is drawn into the terminal.
type Protocol int

const (
	ProtocolNone       Protocol = iota // no chart output
	ProtocolKitty                      // Kitty graphics protocol
	ProtocolITerm2                     // iTerm2 inline images
	ProtocolSixel                      // Sixel graphics
	ProtocolHalfblocks                 // upper half blocks with 24-bit color
	ProtocolBraille                    // Braille dot lines, any UTF-8 terminal
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
	ProtocolBraille:    "braille",
}

// String returns the human-readable name of the protocol.
func (p Protocol) String() string {
	if p >= 0 && int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// IsImage reports whether the protocol draws a raster image.
func (p Protocol) IsImage() bool {
	switch p {
	case ProtocolKitty, ProtocolITerm2, ProtocolSixel, ProtocolHalfblocks:
		return true
	}
	return false
}

// ParseProtocol parses a configured protocol name. "auto" and the empty
// string report ok=false so the caller falls back to detection.
func ParseProtocol(name string) (p Protocol, ok bool, err error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return ProtocolNone, false, nil
	case "kitty":
		return ProtocolKitty, true, nil
	case "iterm2":
		return ProtocolITerm2, true, nil
	case "sixel":
		return ProtocolSixel, true, nil
	case "halfblocks", "half-blocks":
		return ProtocolHalfblocks, true, nil
	case "braille", "text":
		return ProtocolBraille, true, nil
	case "none", "off":
		return ProtocolNone, true, nil
	}
	return ProtocolNone, false, fmt.Errorf("terminal: unknown protocol %q", name)
}

// SelectProtocol returns the best protocol for term. Image protocols are
// unreliable over SSH, so remote sessions and terminals without an image
// protocol get Braille, which only needs UTF-8.
func SelectProtocol(term Terminal, ssh bool) Protocol {
	if ssh {
		return ProtocolBraille
	}
	switch term {
	case TermGhostty, TermKitty, TermWezTerm:
		return ProtocolKitty
	case TermITerm2:
		return ProtocolITerm2
	}
	if term.SupportsTrueColor() {
		return ProtocolHalfblocks
	}
	return ProtocolBraille
}
