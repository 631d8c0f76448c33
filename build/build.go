package build

// Version is overridden at link time with -ldflags "-X github.com/paularlott/iconset/build.Version=..."
var Version = "0.1.0"
