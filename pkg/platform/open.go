// SPDX-License-Identifier: MPL-2.0

package platform

// OpenCommand returns the program and arguments that hand target (a URI or a
// file path) to the desktop's default handler on goos. Inside a sandbox the
// command is prefixed so it runs on the host.
func OpenCommand(goos string, sandbox SandboxType, target string) (string, []string) {
	var argv []string
	switch goos {
	case Windows:
		// rundll32 avoids cmd.exe quoting rules for URIs containing '&'.
		argv = []string{"rundll32", "url.dll,FileProtocolHandler", target}
	case Darwin:
		argv = []string{"open", target}
	default:
		argv = []string{"xdg-open", target}
	}

	if prefix := SpawnPrefixFor(sandbox); len(prefix) > 0 {
		argv = append(prefix, argv...)
	}
	return argv[0], argv[1:]
}
