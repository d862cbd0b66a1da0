package main

import "fmt"

// Build-time variables, set via ldflags:
//
//	go build -ldflags "-X main.version=0.3.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	version = "0.3.0"
	commit  = "dev"
	date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("sysdash %s (%s) built %s", version, commit, date)
}
