package legacy

import (
	"context"

	"sciport/internal/catalog/sqltemplate"
)

// TemplateSource resolves query text for a (domain, locale, file) triple.
type TemplateSource interface {
	ReadTemplate(loc sqltemplate.Location) (string, error)
}

// Reader executes named legacy queries for a catalog domain. It resolves the
// per-domain locale from the single configured application locale, loads the
// SQL template, and runs it through the executor. Readers hold no state beyond
// their collaborators and are safe for concurrent use.
type Reader struct {
	templates TemplateSource
	executor  Executor
	appLocale string
}

// NewReader validates the locale remapping table and builds a Reader.
func NewReader(templates TemplateSource, executor Executor, appLocale string) (*Reader, error) {
	if err := validateLocaleTable(); err != nil {
		return nil, err
	}
	return &Reader{templates: templates, executor: executor, appLocale: appLocale}, nil
}

// Execute runs the named query for a domain and returns the flattened rows.
// An empty result is not an error.
func (r *Reader) Execute(ctx context.Context, domain, fileName string) ([]Row, error) {
	query, err := r.templates.ReadTemplate(sqltemplate.Location{
		Domain:   domain,
		Locale:   resolveLocale(domain, r.appLocale),
		FileName: fileName,
	})
	if err != nil {
		return nil, err
	}
	return r.executor.Query(ctx, query)
}
