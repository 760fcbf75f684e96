package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulego/influxqs/types"
	"github.com/rulego/influxqs/utils/table"
)

func newRenderCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render [query...]",
		Short: "Render query strings as InfluxQL",
		Example: `  influxqs render -m deals 'aggregate=owner:time 5m,total sum price&fill=previous'
  echo 'author=/frederick/i' | influxqs render -m books`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.newParser(cmd)
			if err != nil {
				return err
			}
			qs, err := queries(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, q := range qs {
				out, err := p.ParseQuery(q)
				if err != nil {
					return fmt.Errorf("query %q: %w", q, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}

// Output formats of the parse command.
const (
	formatJSON  = "json"
	formatTable = "table"
)

// fragmentColumns is the column order of the parse table
var fragmentColumns = []string{"query", "fields", "filter", "groupBy", "agg", "fill", "sort", "limit"}

func newParseCmd(f *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse [query...]",
		Short: "Print the parsed clause fragments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatTable {
				return fmt.Errorf("unknown format %q (json, table)", format)
			}
			p, err := f.newParser(cmd)
			if err != nil {
				return err
			}
			qs, err := queries(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			var rows []map[string]string
			for _, q := range qs {
				qo, err := p.Parse(q)
				if err != nil {
					return fmt.Errorf("query %q: %w", q, err)
				}
				if format == formatTable {
					rows = append(rows, fragmentRow(q, qo))
					continue
				}
				if err := enc.Encode(qo); err != nil {
					return err
				}
			}
			if format == formatTable {
				return table.Print(cmd.OutOrStdout(), rows, fragmentColumns)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatJSON, "output format (json, table)")
	return cmd
}

func fragmentRow(query string, qo types.QueryOptions) map[string]string {
	return map[string]string{
		"query":   query,
		"fields":  qo.Fields,
		"filter":  qo.Filter.Filters,
		"groupBy": qo.Aggregate.GroupBy,
		"agg":     qo.Aggregate.Agg,
		"fill":    qo.Fill,
		"sort":    qo.Sort,
		"limit":   qo.Limit,
	}
}

func newCastersCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "casters",
		Short: "List the available value casters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := f.newParser(cmd)
			if err != nil {
				return err
			}
			for _, name := range p.Casters() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
