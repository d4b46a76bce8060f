// Command jsonquery queries a JSON document with a selector expression.
package main

import (
	"os"

	"github.com/Lythenas/json-query/cli"
)

func main() {
	os.Exit(cli.Run())
}
