package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/adv-linalg/advec/vectors"

	"github.com/evilsocket/islazy/str"

	"github.com/chzyer/readline"
)

func parseValues(raw string) ([]float64, error) {
	values := str.Comma(raw)
	if len(values) == 0 {
		return nil, fmt.Errorf("could not create empty vector")
	}

	data := make([]float64, len(values))
	for i, v := range values {
		if f, err := strconv.ParseFloat(v, 64); err != nil {
			return nil, err
		} else {
			data[i] = f
		}
	}

	return data, nil
}

var newVectorHandler = handler{
	Name:        "NEW",
	Mnemonic:    "NEW or N <NAME> <VALUES>",
	Completer:   readline.PcItem("new"),
	Parser:      regexp.MustCompile(`^(?i)(NEW|N)\s+([a-zA-Z_]\w*)\s+(.+)$`),
	Description: "Create a mutable vector called <NAME> from the comma separated <VALUES>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		name := args[0]

		data, err := parseValues(args[1])
		if err != nil {
			return err
		}

		s.Put(name, vectors.MutFromSlice(data))

		fmt.Printf("%s is a mutable vector of %d elements\n", name, len(data))

		return nil
	},
}
