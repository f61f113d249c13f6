package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var thawHandler = handler{
	Name:        "THAW",
	Mnemonic:    "THAW <NAME>",
	Completer:   readline.PcItem("thaw"),
	Parser:      regexp.MustCompile(`^(?i)(THAW)\s+([a-zA-Z_]\w*)$`),
	Description: "Turn the immutable vector <NAME> back into a mutable one without copying.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		frozen, ok := v.(*vectors.Vector[float64])
		if !ok {
			return fmt.Errorf("%s is not an immutable vector", args[0])
		}

		s.Put(args[0], frozen.AsMut())

		fmt.Printf("%s is now mutable\n", args[0])

		return nil
	},
}
