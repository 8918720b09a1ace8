package main

import "github.com/ZhouZhiping045/FidelityGPT/cmd"

func main() {
	cmd.Execute()
}
