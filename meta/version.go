package meta

var (
	// Version This variable is replaced in compile time. `-ldflags "-X 'github.com/dronhome/TP-final/meta.Version=${VERSION}'"`
	Version = "0.1.0"
	// Commit This variable is replaced in compile time. `-ldflags "-X 'github.com/dronhome/TP-final/meta.Commit=${GIT_REV}'"`
	Commit = "latest"
	// BuildDate This variable is replaced in compile time. `-ldflags "-X 'github.com/dronhome/TP-final/meta.BuildDate=${BUILD_DATE}'"`
	BuildDate = "2026-08-26T10:00:00+02:00"
)
