// Command tilepath loads a YAML grid document and answers path queries over
// it with the incremental A* engine in package tilegraph.
//
//	tilepath find    --grid map.yaml --from 0,0 --to 9,4
//	tilepath step    --grid map.yaml --steps 5 --json
//	tilepath regions --grid map.yaml
//	tilepath batch   --grid map.yaml --pairs 0,0:9,4 --pairs 3,1:0,4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tilepath:", err)
		os.Exit(1)
	}
}
