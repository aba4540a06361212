package main

import "github.com/KaramelBytes/beanview/cmd"

func main() {
	cmd.Execute()
}
