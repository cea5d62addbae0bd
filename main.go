// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"oss/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the OSS REPL, %s!\n", currentUser.Username)
	fmt.Println("Type rules such as `class=User { visible: true; }`; Ctrl-D exits.")
	repl.Start(os.Stdin, os.Stdout)
}
