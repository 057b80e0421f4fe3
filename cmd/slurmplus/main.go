package main

import (
	"os"

	"github.com/slurmplus/goslurm/internal/cli"
	"github.com/slurmplus/goslurm/internal/colorio"
)

func main() {
	rootCmd := cli.BuildCLI()
	if err := rootCmd.Execute(); err != nil {
		cli.PrintCauseChain(colorio.New(colorio.Auto), err)
		os.Exit(1)
	}
}
