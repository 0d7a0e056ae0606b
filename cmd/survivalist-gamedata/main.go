package main

import "survivalist-gamedata/cmd"

func main() {
	cmd.Execute()
}
