package main

import "github.com/osse101/TierPlan_Go/internal/cli"

func main() {
	cli.Execute()
}
