// Package version derives the build identity reported by the health endpoint
// and stamped into the User-Agent of outbound portal requests.
package version

import (
	"runtime/debug"
	"sync"
)

// App is the service name used in version strings.
const App = "bidiq"

// commit may be injected with -ldflags "-X .../pkg/version.commit=<sha>" for
// container builds that compile from a tarball without VCS metadata.
var commit string

// Commit returns the short revision the binary was built from, or "dev" when
// neither the ldflags override nor VCS build info is available (`go test`,
// non-git builds).
var Commit = sync.OnceValue(func() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
})

// UserAgent returns the header value sent to the procurement portals,
// e.g. "bidiq/1a2b3c4d".
func UserAgent() string {
	return App + "/" + Commit()
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
