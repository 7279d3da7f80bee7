// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/fakerhelp/fakerhelp/cmd/fakerhelp"

func main() {
	cmd.Execute()
}
