package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/pathoracle/pathoracle/pkg/probe"
	"github.com/pathoracle/pathoracle/pkg/score"
)

// FormatScored renders a candidate line: path [p=0.004219]
func FormatScored(s score.Scored) string {
	var b strings.Builder
	b.WriteString(ConfigValueStyle.Render(s.Path))
	b.WriteString(" ")
	b.WriteString(BracketStyle.Render("["))
	b.WriteString(ProbabilityStyle.Render(fmt.Sprintf("p=%.6f", s.Probability)))
	b.WriteString(BracketStyle.Render("]"))
	return b.String()
}

// FormatProbe renders a probe result line in httpx style:
// [+] /admin [401] [p=0.004219]
func FormatProbe(r probe.Result) string {
	var b strings.Builder

	switch {
	case r.Valid:
		b.WriteString(ConfirmedStyle.Render("[+] "))
	case r.StatusCode == 0:
		b.WriteString(UnreachableStyle.Render("[?] "))
	default:
		b.WriteString(RejectedStyle.Render("[-] "))
	}

	b.WriteString(ConfigValueStyle.Render(r.Path))
	b.WriteString(" ")
	b.WriteString(BracketStyle.Render("["))
	if r.StatusCode == 0 {
		b.WriteString(UnreachableStyle.Render("no response"))
	} else {
		b.WriteString(StatusCodeStyle(r.StatusCode).Render(fmt.Sprintf("%d", r.StatusCode)))
	}
	b.WriteString(BracketStyle.Render("] ["))
	b.WriteString(ProbabilityStyle.Render(fmt.Sprintf("p=%.6f", r.Probability)))
	b.WriteString(BracketStyle.Render("]"))
	return b.String()
}

// PrintScored prints the ranked candidate list to stderr.
func PrintScored(candidates []score.Scored) {
	if IsSilent() {
		return
	}
	for _, c := range candidates {
		fmt.Fprintln(os.Stderr, "  "+FormatScored(c))
	}
}

// PrintProbeResult streams a single probe outcome to stderr.
func PrintProbeResult(r probe.Result) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, "  "+FormatProbe(r))
}
