package main

import "github.com/iksnae/roblox-ai-studio/cmd"

func main() {
	cmd.Execute()
}
