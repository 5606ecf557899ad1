package main

import "github.com/lazyhash/tokenpick/cmd"

func main() {
	cmd.Execute()
}
