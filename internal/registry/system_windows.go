// SPDX-License-Identifier: MPL-2.0

//go:build windows

package registry

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

type systemReader struct{}

// System returns a Reader backed by the Windows registry.
func System() Reader {
	return systemReader{}
}

func hive(root Root) registry.Key {
	if root == CurrentUser {
		return registry.CURRENT_USER
	}
	return registry.LOCAL_MACHINE
}

func (systemReader) SubKeys(root Root, path string) ([]string, error) {
	k, err := registry.OpenKey(hive(root), path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, &KeyError{Root: root, Path: path, Err: translate(err)}
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, &KeyError{Root: root, Path: path, Err: translate(err)}
	}
	return names, nil
}

func (systemReader) String(root Root, path, name string) (string, error) {
	k, err := registry.OpenKey(hive(root), path, registry.QUERY_VALUE)
	if err != nil {
		return "", &KeyError{Root: root, Path: path, Value: name, Err: translate(err)}
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", &KeyError{Root: root, Path: path, Value: name, Err: translate(err)}
	}
	return v, nil
}

func translate(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return ErrNotExist
	}
	return err
}
