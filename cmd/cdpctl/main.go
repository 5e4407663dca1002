// The cdpctl program is a thin CLI host for the CDP client runtime: it
// issues one command per invocation (launch/eval/shot) against a local
// or remote headless Chrome instance, then exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tgraves/cdpctl/internal/cdpcmd"
)

func main() {
	cmd := cdpcmd.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
