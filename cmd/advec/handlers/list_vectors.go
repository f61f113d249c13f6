package handlers

import (
	"fmt"
	"os"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

// Reading a vector with a live exclusive view panics until the view is
// released, show the state instead of failing the whole listing.
func peekValues(v vectors.Reader[float64], limit int) (data string) {
	defer func() {
		if recover() != nil {
			data = "(borrowed)"
		}
	}()
	return valuesAsString(v, limit)
}

var listVectorsHandler = handler{
	Name:        "LIST",
	Mnemonic:    "LIST or L",
	Completer:   readline.PcItem("list"),
	Parser:      regexp.MustCompile(`^(?i)(LIST|L)$`),
	Description: "List the vectors of the current session.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		columns := []string{
			"name",
			"kind",
			"size",
			"data",
		}
		rows := [][]string{}

		for _, name := range s.Names() {
			v, err := s.Get(name)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				name,
				kindOf(v),
				fmt.Sprintf("%d", v.Len()),
				peekValues(v, 10),
			})
		}

		tui.Table(os.Stdout, columns, rows)

		fmt.Printf("[%d vectors]\n", s.Size())

		return nil
	},
}
