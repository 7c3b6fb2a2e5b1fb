// Package main provides the CLI for the umlit diagram toolchain.
package main

import "github.com/benedikt-weyer/umlit/internal/cli"

func main() {
	cli.Execute()
}
