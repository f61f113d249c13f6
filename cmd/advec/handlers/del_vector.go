package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var delVectorHandler = handler{
	Name:        "DEL",
	Mnemonic:    "DEL or D <NAME>",
	Completer:   readline.PcItem("del"),
	Parser:      regexp.MustCompile(`^(?i)(DEL|D)\s+([a-zA-Z_]\w*)$`),
	Description: "Forget the vector <NAME>, releasing its claim on the parent if it is a view.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		name := args[0]

		v, err := s.Get(name)
		if err != nil {
			return err
		}

		switch view := v.(type) {
		case *vectors.VectorSlice[float64]:
			view.Release()
		case *vectors.MutVectorSlice[float64]:
			view.Release()
		}

		s.Drop(name)

		fmt.Printf("%s deleted\n", name)

		return nil
	},
}
