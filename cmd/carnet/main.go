package main

import "carnet-backend/cmd/carnet/cmd"

func main() {
	cmd.Execute()
}
