package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/dix/dixlang"
)

func runREPL(ctx context.Context, interpreter *dixlang.Interpreter) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".dix_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	store := dixlang.NewStore()
	var pending strings.Builder
	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		pending.WriteString(line)
		pending.WriteString("\n")

		code := pending.String()
		if strings.TrimSpace(code) == "" {
			pending.Reset()
			continue
		}
		if !complete(code) {
			rl.SetPrompt(". ")
			continue
		}
		pending.Reset()
		rl.SetPrompt("> ")

		res, err := interpreter.Exec(ctx, dixlang.NewSource("repl", code), store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else if !res.IsNone() {
			fmt.Println(res)
		}
	}
}

// complete reports whether code can be executed without waiting for more lines.
func complete(code string) bool {
	_, err := dixlang.Parse(dixlang.NewSource("repl", code))
	if err == nil {
		return true
	}
	var unbalanced *dixlang.UnbalancedBracketError
	if errors.As(err, &unbalanced) && unbalanced.Want == "}" {
		return false
	}
	var malformed *dixlang.MalformedStatementError
	if errors.As(err, &malformed) && malformed.Incomplete {
		return false
	}
	return true
}
