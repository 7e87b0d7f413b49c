// Command formscript replays a YAML scenario of UI events against one of
// the forms and prints the resulting state as YAML.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
