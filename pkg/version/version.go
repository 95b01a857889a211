package version

// Default version is "0.0.0" and is set at build time
// with -ldflags "-X github.com/redhat-developer/kexec/pkg/version.VERSION=..."
var (
	// VERSION is version number that will be displayed when running ./kexec version
	VERSION = "v0.0.0"

	// GITCOMMIT is hash of the commit that will be displayed when running ./kexec version
	// this will be overwritten when running  build like this: go build -ldflags="-X github.com/redhat-developer/kexec/pkg/version.GITCOMMIT=$(GITCOMMIT)"
	// HEAD is default indicating that this was not set during build
	GITCOMMIT = "HEAD"
)
