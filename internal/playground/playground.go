// Package playground generates fake users and sorts them by email with
// asyncslice.Sort, printing the result as a table.
package playground

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/Sykander/Iterable-Async-Methods/asyncslice"
	"github.com/Sykander/Iterable-Async-Methods/internal/fakedata"
	"github.com/Sykander/Iterable-Async-Methods/localecmp"
)

// Run generates cfg.Count users, sorts them and writes the table to w.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	collator, err := localecmp.Parse(cfg.Locale)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	users, err := fakedata.New(seed).Users(cfg.Count)
	if err != nil {
		return err
	}
	logger.Info("generated users", zap.Int("count", len(users)), zap.Int64("seed", seed))

	sorted, err := SortUsers(ctx, users, collator, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Asynchronously sorted users")
	return Render(w, sorted)
}

// SortUsers orders users by email under the collator's locale.
// Each comparison is awaited as if it were a remote call.
func SortUsers(ctx context.Context, users []fakedata.User, collator *localecmp.Collator, logger *zap.Logger) ([]fakedata.User, error) {
	byEmail := localecmp.By(collator, func(u fakedata.User) string {
		return u.Email
	})

	sorted, err := asyncslice.Sort(ctx, users, Await(byEmail), asyncslice.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("sort users: %w", err)
	}
	return sorted, nil
}

type outcome struct {
	c   int
	err error
}

// Await runs each comparison on its own goroutine and waits for it, the way
// a comparison backed by a remote call would be awaited. The comparator's
// error is returned as-is.
func Await[T any](compare asyncslice.Comparator[T]) asyncslice.Comparator[T] {
	return func(ctx context.Context, a, b T) (int, error) {
		res := make(chan outcome, 1)
		go func() {
			c, err := compare(ctx, a, b)
			res <- outcome{c, err}
		}()
		select {
		case o := <-res:
			return o.c, o.err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// Render writes users as an aligned table. Columns are left-aligned and
// separated by two spaces; only the ID column is unpadded.
func Render(w io.Writer, users []fakedata.User) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tID")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.Name, u.Email, u.ID)
	}
	return tw.Flush()
}
