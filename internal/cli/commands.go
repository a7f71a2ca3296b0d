package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newTablesCmd lists the tables of a database, one per line.
func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <database-file>",
		Short: "List tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeDB, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer closeDB()

			tables, err := src.ListTables(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range tables {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// newSchemaCmd prints CREATE statements, for one table or the whole file.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <database-file> [table]",
		Short: "Print table schema",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeDB, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer closeDB()

			tables := args[1:]
			if len(tables) == 0 {
				tables, err = src.ListTables(cmd.Context())
				if err != nil {
					return err
				}
			}

			for _, name := range tables {
				schema, err := src.TableSchema(cmd.Context(), name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), schema+";")
			}
			return nil
		},
	}
}

// newRowsCmd dumps a table's rows tab-separated, header first.
func newRowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows <database-file> <table>",
		Short: "Dump table rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeDB, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer closeDB()

			columns, err := src.TableColumns(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			rows, err := src.Rows(cmd.Context(), "*", args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(columns, "\t"))
			for _, row := range rows {
				cells := make([]string, len(row))
				for i, v := range row {
					cells[i] = v.String()
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cells, "\t"))
			}
			return nil
		},
	}
}
