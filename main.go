// Package main is the entry point for the pod-query CLI.
package main

import "github.com/ajxudir/podquery/cmd"

func main() {
	cmd.Execute()
}
