// Package buildinfo holds version details set at link time with
// -ldflags "-X github.com/lgbarn/desc2san-go/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("desc2san %s (commit=%s, date=%s)", Version, Commit, Date)
}
