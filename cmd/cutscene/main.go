package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApp(os.Stdout, os.Stderr)
	if err := app.Execute(os.Args[1:]); err != nil {
		if code, ok := IsExitError(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
