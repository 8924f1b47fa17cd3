package main

import "github.com/Baydnn/telemetry-pipeline/cmd"

func main() {
	cmd.Execute()
}
