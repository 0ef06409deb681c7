// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package registry

type systemReader struct{}

// System returns a Reader for the host registry. Hosts other than Windows
// have none, so every lookup fails with ErrUnsupported and registry-backed
// scanners contribute nothing.
func System() Reader {
	return systemReader{}
}

func (systemReader) SubKeys(root Root, path string) ([]string, error) {
	return nil, &KeyError{Root: root, Path: path, Err: ErrUnsupported}
}

func (systemReader) String(root Root, path, name string) (string, error) {
	return "", &KeyError{Root: root, Path: path, Value: name, Err: ErrUnsupported}
}
