// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/geewers/geewers/cmd/geewers"

func main() {
	cmd.Execute()
}
