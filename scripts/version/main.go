// Package main prints the version stamped into builds, derived from git
// tags. Outside a tagged checkout it falls back to "dev", the default
// value of app.Version.
package main

import (
	"fmt"
	"os/exec"
	"strings"
)

func main() {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		fmt.Print("dev")
		return
	}
	fmt.Print(strings.TrimSpace(string(out)))
}
