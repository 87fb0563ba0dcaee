package main

import "github.com/floxenta/floxenta_backend/cmd"

func main() {
	cmd.Execute()
}
