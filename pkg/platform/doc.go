// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities: OS name
// constants, application sandbox detection, and the host command that opens
// a URI or file with its default handler.
package platform
