// Command chinook browses the Chinook catalog from the terminal: detail
// views for customers and invoices, list views for every resource.
package main

import "os"

const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
