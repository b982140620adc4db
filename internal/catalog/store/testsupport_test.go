package store

import (
	"context"
	"testing"

	"sciport/internal/catalog/legacy"
	"sciport/internal/catalog/sqltemplate"
)

// fakeTemplates substitutes the template tree with a synthetic query string so
// fakeExecutor can key canned rows by (domain, locale, file).
type fakeTemplates struct{}

func (fakeTemplates) ReadTemplate(loc sqltemplate.Location) (string, error) {
	return loc.Domain + "/" + loc.Locale + "/" + loc.FileName, nil
}

type fakeExecutor struct {
	rows map[string][]legacy.Row
	errs map[string]error
}

func (f *fakeExecutor) Query(_ context.Context, query string) ([]legacy.Row, error) {
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.rows[query], nil
}

func newTestReader(t *testing.T, exec *fakeExecutor) *legacy.Reader {
	t.Helper()
	reader, err := legacy.NewReader(fakeTemplates{}, exec, "рус")
	if err != nil {
		t.Fatalf("build reader: %v", err)
	}
	return reader
}
