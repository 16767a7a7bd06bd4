// Package version carries build identity, overridable via -ldflags.
package version

var (
	AppName   = "chainbot"
	Version   = "dev"
	BuildDate = "unknown"
)

// String returns "chainbot dev (unknown)" style identity for logs and the
// about command.
func String() string {
	return AppName + " " + Version + " (" + BuildDate + ")"
}
