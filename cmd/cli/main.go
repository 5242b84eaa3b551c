package main

import "github.com/angelospk/opensubtitles-xmlrpc/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
