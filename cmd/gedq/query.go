package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dolmen-go/contextio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vinicius-lino-figueiredo/gedq"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/log"
)

type queryFlags struct {
	file     string
	where    []string
	or       []string
	order    []string
	sel      []string
	limit    int
	offset   int
	pageSize int
	page     int
	count    bool
	stream   bool
}

func newQueryCmd(v *viper.Viper) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, order and project a JSON array",
		Long: `Reads a JSON array (or a single object) from --file or stdin and
writes the query results as JSON to stdout.

Filters have the form "path [not] operator [value]". Values are read as JSON
when possible, and as plain text otherwise:

  --where 'age gte 18' --where 'tags in ["a","b"]' --or 'name like j%'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if qf.file != "" && qf.file != "-" {
				f, err := os.Open(qf.file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runQuery(cmd.Context(), in, cmd.OutOrStdout(), qf, v.GetBool(keyIndent))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&qf.file, "file", "f", "", "input file, stdin if empty or -")
	flags.StringArrayVarP(&qf.where, "where", "w", nil, "filter every result must pass")
	flags.StringArrayVar(&qf.or, "or", nil, "filter rescuing results failing a --where filter")
	flags.StringArrayVarP(&qf.order, "order", "o", nil, "order term: path[:String|Number|Boolean|Date] [asc|desc]")
	flags.StringArrayVarP(&qf.sel, "select", "s", nil, "select term: path [as alias]")
	flags.IntVarP(&qf.limit, "limit", "l", -1, "maximum number of results, no limit if negative")
	flags.IntVar(&qf.offset, "offset", 0, "number of results to skip")
	flags.IntVar(&qf.pageSize, "page-size", 0, "split results into pages of this size")
	flags.IntVar(&qf.page, "page", 0, "only write this page, requires --page-size")
	flags.BoolVarP(&qf.count, "count", "c", false, "only write the number of matching items")
	flags.BoolVar(&qf.stream, "stream", false, "write one result per line as they are found")
	return cmd
}

func runQuery(ctx context.Context, in io.Reader, out io.Writer, qf queryFlags, indent bool) error {
	sources, err := readSources(ctx, in)
	if err != nil {
		return err
	}

	q, err := buildQuery(sources, qf)
	if err != nil {
		return err
	}
	log.Debugf("query %s: %d sources", q.ID(), len(sources))

	enc := json.NewEncoder(contextio.NewWriter(ctx, out))
	if indent {
		enc.SetIndent("", "  ")
	}

	switch {
	case qf.count:
		n, err := q.Count()
		if err != nil {
			return err
		}
		return enc.Encode(n)
	case qf.page > 0:
		if qf.pageSize < 1 {
			return fmt.Errorf("--page requires --page-size")
		}
		res, err := q.Page(qf.page, qf.pageSize)
		if err != nil {
			return err
		}
		return enc.Encode(res)
	case qf.pageSize > 0:
		p, err := q.Paginate(qf.pageSize)
		if err != nil {
			return err
		}
		return enc.Encode(pagination{
			TotalResults: p.TotalResults,
			TotalPages:   p.TotalPages,
			Pages:        p.Pages,
		})
	case qf.stream:
		return stream(ctx, q, enc)
	default:
		res, err := q.Execute()
		if err != nil {
			return err
		}
		return enc.Encode(res)
	}
}

type pagination struct {
	TotalResults int     `json:"totalResults"`
	TotalPages   int     `json:"totalPages"`
	Pages        [][]any `json:"pages"`
}

func stream(ctx context.Context, q *gedq.Query, enc *json.Encoder) error {
	cur, err := q.Cursor(ctx)
	if err != nil {
		return err
	}
	defer cur.Close()
	for cur.Next() {
		if err := enc.Encode(cur.Value()); err != nil {
			return err
		}
	}
	return cur.Err()
}

// readSources reads a JSON array of objects or a single JSON object.
func readSources(ctx context.Context, in io.Reader) ([]any, error) {
	var data any
	if err := json.NewDecoder(contextio.NewReader(ctx, in)).Decode(&data); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input: %w", err)
	}
	switch t := data.(type) {
	case []any:
		return t, nil
	case map[string]any:
		return []any{t}, nil
	default:
		return nil, fmt.Errorf("reading input: expected an array or an object, got %T", data)
	}
}

func buildQuery(sources []any, qf queryFlags) (*gedq.Query, error) {
	q := gedq.New(sources...)
	if len(qf.sel) > 0 {
		q.Select(anys(qf.sel)...)
	}
	if len(qf.order) > 0 {
		q.OrderBy(anys(qf.order)...)
	}
	switch {
	case qf.limit >= 0:
		q.Limit(qf.offset, qf.limit)
	case qf.offset > 0:
		q.Limit(qf.offset, max(len(sources)-qf.offset, 0))
	}
	for _, raw := range qf.where {
		c, err := parseClause(raw)
		if err != nil {
			return nil, err
		}
		c.apply(q.Where(c.path...))
	}
	for _, raw := range qf.or {
		c, err := parseClause(raw)
		if err != nil {
			return nil, err
		}
		c.apply(q.Or(c.path...))
	}
	return q, q.Err()
}

func anys(s []string) []any {
	res := make([]any, len(s))
	for n, v := range s {
		res[n] = v
	}
	return res
}
