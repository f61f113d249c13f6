package handlers

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/adv-linalg/advec/storage"

	"github.com/chzyer/readline"
)

var saveVectorHandler = handler{
	Name:        "SAVE",
	Mnemonic:    "SAVE <NAME>",
	Completer:   readline.PcItem("save"),
	Parser:      regexp.MustCompile(`^(?i)(SAVE)\s+([a-zA-Z_]\w*)$`),
	Description: "Persist the vector <NAME> as a record, updating the existing record with that name.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		name := args[0]

		v, err := s.Get(name)
		if err != nil {
			return err
		}
		data := valuesOf(v)

		if existing := s.Records.FindBy("name", name); len(existing) > 0 {
			updated := &storage.Record{
				ID:     existing[0].ID,
				Values: data,
				Meta:   maps.Clone(existing[0].Meta),
			}
			if err := s.Records.Update(updated); err != nil {
				return err
			}

			fmt.Printf("record %d updated\n", updated.ID)

			return nil
		}

		record := &storage.Record{
			Values: data,
			Meta:   map[string]string{"name": name},
		}
		if err := s.Records.Create(record); err != nil {
			return err
		}

		fmt.Printf("record %d created\n", record.ID)

		return nil
	},
}
