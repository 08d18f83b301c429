// Package standardize holds the value- and name-standardization stages of
// the cleaning pipeline.
package standardize

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	sc "github.com/dirtydata/salescrub/pkg/salescrub"
)

var nonIdent = regexp.MustCompile(`[^a-z0-9_]`)

// NormalizeName rewrites one header name: trim, lowercase, spaces to
// underscores, then strip anything outside [a-z0-9_]. Idempotent.
func NormalizeName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return nonIdent.ReplaceAllString(s, "")
}

// CleanNames normalizes every column name. Two headers collapsing to the
// same normalized name abort the run with a NormalizationConflictError.
type CleanNames struct {
	Log *zap.SugaredLogger
}

func (t *CleanNames) Name() string { return "clean_names" }

func (t *CleanNames) Apply(ctx context.Context, f *sc.Frame) (*sc.Frame, error) {
	names := f.Schema().Names()
	for i, n := range names {
		names[i] = NormalizeName(n)
	}
	out, err := f.WithColumnNames(names)
	if err != nil {
		return nil, err
	}
	if t.Log != nil {
		t.Log.Infof("cleaned column names: %v", names)
	}
	return out, nil
}
