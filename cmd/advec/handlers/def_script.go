package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/script"
	"github.com/adv-linalg/advec/storage"

	"github.com/chzyer/readline"
)

var defScriptHandler = handler{
	Name:        "DEF",
	Mnemonic:    "DEF <CODE>",
	Completer:   readline.PcItem("def"),
	Parser:      regexp.MustCompile(`^(?i)(DEF)\s+(.+)$`),
	Description: "Define a transform script from its javascript source, for instance: DEF function square(x){ return x*x; }",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		code := args[0]

		compiled, err := script.Compile(code)
		if err != nil {
			return err
		}

		if prev := s.Scripts.FindByName(compiled.Name()); prev != nil {
			return fmt.Errorf("a script named %s already exists with id %d", prev.Name, prev.ID)
		}

		stored := &storage.Script{
			Name: compiled.Name(),
			Code: code,
		}
		if err := s.Scripts.Create(stored); err != nil {
			return err
		}

		s.Cache.Add(stored.ID, compiled)

		fmt.Printf("script %s created with id %d\n", stored.Name, stored.ID)

		return nil
	},
}
