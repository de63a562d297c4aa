package main

import "runtime/debug"

// Release builds set these with
// -ldflags "-X main.version=v0.3.0 -X main.commit=abc1234 -X main.date=2026-01-02".
var (
	version string
	commit  string
	date    string
)

// buildInfo is what `pipeops version` reports.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// currentBuild prefers ldflags values and falls back to the module and VCS
// stamps embedded by `go build`.
func currentBuild() buildInfo {
	b := buildInfo{Version: version, Commit: commit, Date: date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if b.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			b.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if b.Commit == "" {
					b.Commit = s.Value
				}
			case "vcs.time":
				if b.Date == "" {
					b.Date = s.Value
				}
			}
		}
	}
	if len(b.Commit) > 12 {
		b.Commit = b.Commit[:12]
	}
	b.Version = firstNonEmpty(b.Version, "devel")
	b.Commit = firstNonEmpty(b.Commit, "unknown")
	b.Date = firstNonEmpty(b.Date, "unknown")
	return b
}

func (b buildInfo) String() string {
	return b.Version + " (commit " + b.Commit + ", built " + b.Date + ")"
}
