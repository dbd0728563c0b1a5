package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjakubski/redis"
	"github.com/bjakubski/redis/resp"
)

var (
	addr  string
	trace bool
)

var rootCmd = &cobra.Command{
	Use:   "redis-cli",
	Short: "Interactive client for a Redis server",
	Long:  "redis-cli connects to a Redis server and sends commands read from stdin, printing each reply.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:6379", "server address to connect to")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "log every command and reply")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conn, err := redis.Dial(addr, redis.Config{Trace: trace})
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("connected to %s\n", conn.Addr())

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}

		if name := strings.ToLower(words[0]); name == "quit" || name == "exit" {
			return conn.Quit(ctx)
		}

		args := make([]any, len(words)-1)
		for i, w := range words[1:] {
			args[i] = w
		}

		reply, err := conn.Do(ctx, words[0], args...)
		if err != nil {
			var cmdErr *redis.CommandError
			if errors.As(err, &cmdErr) {
				fmt.Printf("(error) %s\n", cmdErr.Message)
				continue
			}
			return err
		}
		printReply(reply, "")
	}
}

// printReply renders one reply, numbering array elements and indenting
// nested arrays under their position.
func printReply(r resp.Reply, prefix string) {
	switch r.Type {
	case resp.SimpleString:
		fmt.Printf("%s%s\n", prefix, r.Str)
	case resp.Integer:
		fmt.Printf("%s(integer) %d\n", prefix, r.Int)
	case resp.BulkString:
		if r.Null {
			fmt.Printf("%s(nil)\n", prefix)
			return
		}
		fmt.Printf("%s%s\n", prefix, strconv.Quote(string(r.Bulk)))
	case resp.Array:
		if r.Null || len(r.Elems) == 0 {
			fmt.Printf("%s(empty list)\n", prefix)
			return
		}
		pad := strings.Repeat(" ", len(prefix))
		for i, elem := range r.Elems {
			p := prefix
			if i > 0 {
				p = pad
			}
			printReply(elem, fmt.Sprintf("%s%d) ", p, i+1))
		}
	}
}
