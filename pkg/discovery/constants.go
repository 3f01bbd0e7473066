package discovery

// Reserved names used by the surrounding Forc tooling. The discovery
// functions consume these as fixed configuration, not user data.
const (
	// ManifestFileName marks the root directory of a Sway project.
	ManifestFileName = "Forc.toml"
	// LockFileName is written next to the manifest by dependency resolution.
	LockFileName = "Forc.lock"

	// SwayExtension is the source-file extension, compared without a
	// leading dot and case-sensitively.
	SwayExtension = "sw"

	// Conventional package layout names.
	SrcDir        = "src"
	MainEntryName = "main.sw"
	LibEntryName  = "lib.sw"
)
