// Command gedq runs queries against JSON documents.
//
//	gedq query --file people.json --where 'age gte 18' --order 'age desc' --select 'name as n'
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(viper.New()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
