package main

import "github.com/supernovae-ai/qrai-scanner/cmd/qrai/cmd"

func main() {
	cmd.Execute()
}
