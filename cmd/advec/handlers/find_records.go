package handlers

import (
	"fmt"
	"os"
	"regexp"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

var findRecordsHandler = handler{
	Name:        "FIND",
	Mnemonic:    "FIND or F <KEY> <VALUE>",
	Completer:   readline.PcItem("find"),
	Parser:      regexp.MustCompile(`^(?i)(FIND|F)\s+(\w+)\s+(.+)$`),
	Description: "Show the records whose metadata <KEY> equals <VALUE>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		matches := s.Records.FindBy(args[0], args[1])

		tui.Table(os.Stdout, recordColumns, recordRows(matches))

		fmt.Printf("[%d matches]\n", len(matches))

		return nil
	},
}
