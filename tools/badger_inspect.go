package main

import (
	"chat-relay/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "badger-inspect",
		Usage: "print the relay records stored in a Badger directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Value: "./data/badger", Usage: "path to badger DB"},
			&cli.StringFlag{Name: "prefix", Value: "user:", Usage: "key prefix to scan (user:, room:, username:, email:)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			db, err := badger.Open(badger.DefaultOptions(cmd.String("db")).
				WithReadOnly(true).
				WithLogger(nil))
			if err != nil {
				return fmt.Errorf("opening badger failed: %w", err)
			}
			defer db.Close()
			return inspect(db, cmd.String("prefix"), os.Stdout)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inspect(db *badger.DB, prefix string, out io.Writer) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Key", "Type", "Detail", "Size"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				kind, detail := describe(key, val)
				table.Append([]string{key, kind, detail, fmt.Sprintf("%d B", len(val))})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

// describe summarizes a record without ever printing a password hash.
func describe(key string, val []byte) (string, string) {
	switch {
	case strings.HasPrefix(key, "user:"):
		var u domain.User
		if err := json.Unmarshal(val, &u); err != nil {
			return "USER", "unreadable: " + err.Error()
		}
		return "USER", fmt.Sprintf("%s <%s> %s", u.Username, u.Email, u.Status)
	case strings.HasPrefix(key, "room:"):
		var r domain.Room
		if err := json.Unmarshal(val, &r); err != nil {
			return "ROOM", "unreadable: " + err.Error()
		}
		return "ROOM", fmt.Sprintf("%s by %s private=%t", r.Name, r.CreatedBy, r.IsPrivate)
	default:
		return "INDEX", string(val)
	}
}
