package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes what the output terminal can show.
type Capabilities struct {
	Term        Terminal
	Protocol    Protocol
	Size        Size
	Profile     termenv.Profile
	SSH         bool
	Interactive bool // output is a tty
}

// Inspect detects the capabilities of f. A non-empty override other than
// "auto" forces the protocol. Output that is not a terminal always gets
// ProtocolBraille so that piped output stays plain text.
func Inspect(f *os.File, override string) (Capabilities, error) {
	if _, _, err := ParseProtocol(override); err != nil {
		return Capabilities{}, err
	}
	interactive := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())

	size, ok := sizeFromFd(f.Fd())
	if !ok {
		size = sizeFromEnv(os.Getenv)
	}

	profile := termenv.Ascii
	if interactive {
		profile = termenv.NewOutput(f).Profile
	}
	caps := resolve(os.Getenv, interactive, override)
	caps.Size = size
	caps.Profile = profile
	return caps, nil
}

// resolve selects terminal and protocol from env.
func resolve(env Env, interactive bool, override string) Capabilities {
	term := DetectFrom(env)
	ssh := isSSH(env)
	caps := Capabilities{Term: term, SSH: ssh, Interactive: interactive}

	forced, ok, _ := ParseProtocol(override)
	switch {
	case ok:
		caps.Protocol = forced
	case !interactive:
		caps.Protocol = ProtocolBraille
	default:
		caps.Protocol = SelectProtocol(term, ssh)
	}
	return caps
}
