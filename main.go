package main

import "github.com/Alijeyrad/dochouse_backend/cmd"

func main() {
	cmd.Execute()
}
