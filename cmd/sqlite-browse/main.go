// sqlite-browse is a read-only terminal browser for SQLite database files.
package main

import (
	"os"

	"github.com/johan-st/sqlite-browse/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
