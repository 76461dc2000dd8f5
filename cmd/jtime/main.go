package main

import (
	"os"

	"github.com/msto63/jtime/cmd/jtime/cmd"
	jerror "github.com/msto63/jtime/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(jerror.GetCode(err).ExitCode())
	}
}
