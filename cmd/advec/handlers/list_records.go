package handlers

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adv-linalg/advec/storage"
	"github.com/adv-linalg/advec/vectors"

	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func metaAsString(meta map[string]string) string {
	keys := []string{}
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := []string{}
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, meta[key]))
	}
	return strings.Join(parts, " ")
}

func recordRows(records []*storage.Record) [][]string {
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	rows := [][]string{}
	for _, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", len(r.Values)),
			valuesAsString(vectors.SliceOf(r.Values), 10),
			metaAsString(r.Meta),
		})
	}
	return rows
}

var recordColumns = []string{"id", "size", "data", "meta"}

var listRecordsHandler = handler{
	Name:        "RECORDS",
	Mnemonic:    "RECORDS or R [<PAGE> <PER PAGE>]",
	Completer:   readline.PcItem("records"),
	Parser:      regexp.MustCompile(`^(?i)(RECORDS|R)(?:\s+(\d+)\s+(\d+))?$`),
	Description: "Show stored records at <PAGE> while including <PER PAGE> elements per page.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		page, perPage := 1, 10

		if args[0] != "" {
			var err error
			if page, err = strconv.Atoi(args[0]); err != nil {
				return err
			}
			if perPage, err = strconv.Atoi(args[1]); err != nil {
				return err
			}
		}
		if page < 1 || perPage < 1 {
			return fmt.Errorf("both page and per page must be positive")
		}

		all := s.Records.Objects()
		total := len(all)
		pages := (total + perPage - 1) / perPage
		if pages == 0 {
			pages = 1
		}

		sort.Slice(all, func(i, j int) bool {
			return all[i].ID < all[j].ID
		})

		start := (page - 1) * perPage
		if start > total {
			start = total
		}
		end := start + perPage
		if end > total {
			end = total
		}

		tui.Table(os.Stdout, recordColumns, recordRows(all[start:end]))

		fmt.Printf("[page %d of %d (%d total records)]\n", page, pages, total)

		return nil
	},
}
