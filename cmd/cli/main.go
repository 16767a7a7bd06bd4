// cmd/cli/main.go
//
// Local REPL for trying out command chains without a Discord session:
//
//	$ go run ./cmd/cli
//	chain> echo hi > upcase
//	HI
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"chainbot/internal/chain"
	"chainbot/internal/command"
	"chainbot/internal/command/core"
	"chainbot/internal/storage"
)

// stdoutEvent prints notices straight to the terminal.
type stdoutEvent struct{}

func (stdoutEvent) Respond(text string) {
	fmt.Println(text)
}

func main() {
	storagePath := os.Getenv("STORAGE_PATH")
	if storagePath == "" {
		storagePath = "datastore.json"
	}

	store, err := storage.New(storagePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	registry := command.NewRegistry()
	core.RegisterAll(registry)

	binder := command.NewBinder(registry, func(ev chain.Event, args []string) *command.Context {
		return &command.Context{
			Storage:  store,
			Registry: registry,
			Event:    ev,
			Args:     args,
		}
	})
	processor := chain.New(binder)

	fmt.Println("chainbot REPL, Ctrl-D to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("chain> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if result := processor.Process(line, stdoutEvent{}); result != "" {
			fmt.Println(result)
		}
	}
	fmt.Println()
}
