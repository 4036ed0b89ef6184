package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hqpr/simple-blog/internal/output"
	"github.com/hqpr/simple-blog/loadmore"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const mainListPath = "/blog/"

type moreOptions struct {
	BaseURL  string
	Page     int
	URLs     []string
	All      bool
	MaxPages int
}

type scopeResult struct {
	Path    string
	Rows    [][]string
	Pages   int
	HasNext bool
	Cursor  int
}

var moreCmd = &cobra.Command{
	Use:   "more",
	Short: "Fetch the next page of posts through the load-more endpoint",
	Long: `Fetch posts the way the "load more" button does.

Each --url is a list page path (/blog/author/7/, /blog/category/2/). Without
--url the main list is used. Several --url values are fetched concurrently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := moreOptions{
			BaseURL:  settings.GetString("base_url"),
			Page:     settings.GetInt("page"),
			URLs:     settings.GetStringSlice("urls"),
			All:      settings.GetBool("all"),
			MaxPages: settings.GetInt("max_pages"),
		}
		client := &http.Client{Timeout: settings.GetDuration("timeout")}

		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}

		results, err := runMore(cmd.Context(), client, opts)
		if err != nil {
			return err
		}
		return printResults(printer, results)
	},
}

func init() {
	rootCmd.AddCommand(moreCmd)

	moreCmd.Flags().Int("page", 2, "page to request first")
	moreCmd.Flags().StringSlice("url", nil, "list page path to scope the request to (repeatable)")
	moreCmd.Flags().Bool("all", false, "keep loading until the server reports no next page")
	moreCmd.Flags().Int("max-pages", 100, "stop --all after this many pages")
	moreCmd.Flags().Duration("timeout", 10*time.Second, "per request timeout")

	_ = settings.BindPFlag("page", moreCmd.Flags().Lookup("page"))
	_ = settings.BindPFlag("urls", moreCmd.Flags().Lookup("url"))
	_ = settings.BindPFlag("all", moreCmd.Flags().Lookup("all"))
	_ = settings.BindPFlag("max_pages", moreCmd.Flags().Lookup("max-pages"))
	_ = settings.BindPFlag("timeout", moreCmd.Flags().Lookup("timeout"))
}

func runMore(ctx context.Context, client loadmore.HTTPDoer, opts moreOptions) ([]scopeResult, error) {
	if opts.Page < 1 {
		return nil, fmt.Errorf("page must be at least 1, got %d", opts.Page)
	}
	paths := opts.URLs
	if len(paths) == 0 {
		paths = []string{""}
	}

	results := make([]scopeResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			res, err := fetchScope(gctx, client, opts, path)
			if err != nil {
				return fmt.Errorf("%s: %w", displayPath(path), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func fetchScope(ctx context.Context, client loadmore.HTTPDoer, opts moreOptions, path string) (scopeResult, error) {
	res := scopeResult{Path: displayPath(path), Cursor: opts.Page}

	doc := loadmore.Standalone(opts.Page, path)
	ctrl, err := loadmore.Attach(doc, opts.BaseURL, client, loadmore.Options{IncludeURLParam: path != ""})
	if err != nil {
		return res, err
	}

	for {
		out, err := ctrl.Load(ctx)
		if err != nil {
			return res, err
		}
		logger.Debug("page loaded", "path", res.Path, "page", out.Cursor, "has_next", out.HasNext)

		posts, err := parsePosts(out.Fragment)
		if err != nil {
			return res, err
		}
		for _, p := range posts {
			res.Rows = append(res.Rows, []string{strconv.Itoa(out.Cursor), p.ID, p.Title, p.Meta})
		}
		res.Pages++
		res.HasNext = out.HasNext
		res.Cursor = out.NextCursor

		if !opts.All || !out.HasNext || (opts.MaxPages > 0 && res.Pages >= opts.MaxPages) {
			return res, nil
		}
	}
}

func printResults(printer *output.Printer, results []scopeResult) error {
	for _, res := range results {
		printer.Header(res.Path)
		if len(res.Rows) == 0 {
			printer.Warning("no posts returned")
		} else {
			table := output.NewTable(printer.Out(), []string{"page", "id", "title", "meta"})
			for _, row := range res.Rows {
				table.AddRow(row)
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render table: %w", err)
			}
		}

		if res.HasNext {
			printer.Info("%d posts from %d page(s), next page %d", len(res.Rows), res.Pages, res.Cursor)
		} else {
			printer.Success("%d posts from %d page(s), no more pages", len(res.Rows), res.Pages)
		}
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return mainListPath
	}
	return path
}
