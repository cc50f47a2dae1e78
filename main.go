package main

import "storage-audit/cmd"

func main() {
	cmd.Execute()
}
