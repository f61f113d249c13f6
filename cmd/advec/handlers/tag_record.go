package handlers

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"

	"github.com/adv-linalg/advec/storage"

	"github.com/chzyer/readline"
)

var tagRecordHandler = handler{
	Name:        "TAG",
	Mnemonic:    "TAG <ID> <KEY> <VALUE>",
	Completer:   readline.PcItem("tag"),
	Parser:      regexp.MustCompile(`^(?i)(TAG)\s+(\d+)\s+(\w+)\s+(.+)$`),
	Description: "Set the metadata <KEY> to <VALUE> on the record <ID>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		record := s.Records.Find(id)
		if record == nil {
			return fmt.Errorf("no record with id %d", id)
		}

		updated := &storage.Record{
			ID:     record.ID,
			Values: slices.Clone(record.Values),
			Meta:   maps.Clone(record.Meta),
		}
		if updated.Meta == nil {
			updated.Meta = map[string]string{}
		}
		updated.Meta[args[1]] = args[2]

		if err := s.Records.Update(updated); err != nil {
			return err
		}

		fmt.Printf("record %d tagged with %s=%s\n", id, args[1], args[2])

		return nil
	},
}
