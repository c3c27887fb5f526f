package version

// Version is overwritten at compile time by passing
// -ldflags -X github.com/ps-broker/osb-gateway/version.Version=<version>
var Version = "v9999.99.99-local.dev"
