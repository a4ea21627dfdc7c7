package main

import "github.com/simonhull/asfmeta/cmd/asfinfo/cmd"

func main() {
	cmd.Execute()
}
