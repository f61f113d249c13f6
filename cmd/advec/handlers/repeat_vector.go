package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var repeatVectorHandler = handler{
	Name:        "REPEAT",
	Mnemonic:    "REPEAT or RPT <NAME> <VALUE> <N>",
	Completer:   readline.PcItem("repeat"),
	Parser:      regexp.MustCompile(`^(?i)(REPEAT|RPT)\s+([a-zA-Z_]\w*)\s+([^\s]+)\s+(\d+)$`),
	Description: "Create a mutable vector called <NAME> made of <N> copies of <VALUE>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		name := args[0]

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}

		s.Put(name, vectors.RepeatMut(value, n))

		fmt.Printf("%s is a mutable vector of %d elements\n", name, n)

		return nil
	},
}
