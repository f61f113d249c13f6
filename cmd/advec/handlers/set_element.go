package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/chzyer/readline"
)

var setElementHandler = handler{
	Name:        "SET",
	Mnemonic:    "SET <NAME> <INDEX> <VALUE>",
	Completer:   readline.PcItem("set"),
	Parser:      regexp.MustCompile(`^(?i)(SET)\s+([a-zA-Z_]\w*)\s+(\d+)\s+([^\s]+)$`),
	Description: "Overwrite the element at <INDEX> of the mutable vector <NAME> with <VALUE>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		w, err := s.GetMut(args[0])
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		value, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return err
		}

		w.Set(index, value)

		fmt.Printf("%s[%d] = %f\n", args[0], index, value)

		return nil
	},
}
