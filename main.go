package main

import "github.com/Swoyesh/FinSense/cmd"

func main() {
	cmd.Execute()
}
