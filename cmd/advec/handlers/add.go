package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

// Operators reuse the storage of a mutable operand when they can, tell
// the user where the result actually went.
func bindResult(s *Session, out vectors.Reader[float64], as string) {
	if name := s.NameOf(out); name != "" {
		if as != "" && as != name {
			fmt.Printf("result reused the storage of %s, ignoring AS %s\n", name, as)
		} else {
			fmt.Printf("result reused the storage of %s\n", name)
		}
		return
	}

	if as == "" {
		as = "ans"
	}
	s.Put(as, out)
	fmt.Printf("%s is a new vector of %d elements\n", as, out.Len())
}

var addHandler = handler{
	Name:        "ADD",
	Mnemonic:    "ADD <A> <B> [AS <NAME>]",
	Completer:   readline.PcItem("add"),
	Parser:      regexp.MustCompile(`^(?i)(ADD)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)(?:\s+AS\s+([a-zA-Z_]\w*))?$`),
	Description: "Add vectors <A> and <B> element by element, reusing mutable storage when possible.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		lhs, err := s.Get(args[0])
		if err != nil {
			return err
		}

		rhs, err := s.Get(args[1])
		if err != nil {
			return err
		}

		bindResult(s, vectors.Add(lhs, rhs), args[2])

		return nil
	},
}
