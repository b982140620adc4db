package store

import (
	"context"

	"github.com/google/uuid"

	"sciport/internal/catalog/facet"
	"sciport/internal/catalog/legacy"
	"sciport/internal/catalog/match"
	"sciport/internal/catalog/overlay"
	"sciport/internal/domain"
	"sciport/pkg/pagination"
)

const publicationsMainQuery = "публикации.txt"

// LegacyPublicationStore serves publications from the legacy database with an
// in-memory mutation overlay.
type LegacyPublicationStore struct {
	reader  *legacy.Reader
	overlay *overlay.Store[domain.Publication]
}

func NewLegacyPublicationStore(reader *legacy.Reader) *LegacyPublicationStore {
	return &LegacyPublicationStore{
		reader:  reader,
		overlay: overlay.NewStore[domain.Publication](),
	}
}

// publicationFromRow normalizes one raw publication row. The legacy view only
// exposes a title/type pair, the author name, and the linked project number;
// year and DOI are not present in this schema generation.
func publicationFromRow(row legacy.Row) domain.Publication {
	title := row.String("title", "name_ru")

	id := row.String("id")
	if id == "" {
		id = legacy.DeriveID(legacy.IDPrefixPublication, title)
	}

	authors := []string{}
	if author := row.String("name"); author != "" {
		authors = append(authors, author)
	}

	return domain.Publication{
		ID:        id,
		Title:     title,
		Authors:   authors,
		Type:      row.String("name", "name_ru"),
		ProjectID: row.String("number"),
	}
}

func publicationMatches(p domain.Publication, f domain.PublicationFilters) bool {
	if f.Year != 0 && p.Year != f.Year {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Query != "" {
		return match.Contains(p.Title, f.Query)
	}
	return true
}

func (s *LegacyPublicationStore) listAll(ctx context.Context, f domain.PublicationFilters) ([]domain.Publication, error) {
	rows, err := s.reader.Execute(ctx, legacy.DomainPublications, publicationsMainQuery)
	if err != nil {
		return nil, err
	}

	base := make([]domain.Publication, 0, len(rows))
	for _, row := range rows {
		base = append(base, publicationFromRow(row))
	}

	merged := s.overlay.Merge(base)
	filtered := make([]domain.Publication, 0, len(merged))
	for _, p := range merged {
		if publicationMatches(p, f) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *LegacyPublicationStore) List(ctx context.Context, f domain.PublicationFilters, page pagination.Params) (pagination.Result[domain.Publication], error) {
	all, err := s.listAll(ctx, f)
	if err != nil {
		return pagination.Result[domain.Publication]{}, err
	}
	return pagination.Paginate(all, page), nil
}

func (s *LegacyPublicationStore) GetFilters(ctx context.Context) (domain.PublicationFilterOptions, error) {
	publications, err := s.listAll(ctx, domain.PublicationFilters{})
	if err != nil {
		return domain.PublicationFilterOptions{}, err
	}

	years := make([]int, 0, len(publications))
	for _, p := range publications {
		years = append(years, p.Year)
	}

	return domain.PublicationFilterOptions{
		Type:      facet.SortedUnique(collect(publications, func(p domain.Publication) string { return p.Type })),
		Year:      facet.SortedUniqueInts(years),
		Applicant: facet.SortedUnique(firstAuthors(publications)),
	}, nil
}

func (s *LegacyPublicationStore) GetFilterMeta(ctx context.Context, f domain.PublicationFilters) (domain.PublicationFilterMeta, error) {
	publications, err := s.listAll(ctx, f)
	if err != nil {
		return domain.PublicationFilterMeta{}, err
	}

	years := make([]float64, 0, len(publications))
	for _, p := range publications {
		years = append(years, float64(p.Year))
	}

	return domain.PublicationFilterMeta{
		Type:      facet.CountStrings(collect(publications, func(p domain.Publication) string { return p.Type })),
		Year:      facet.CountNumbers(years),
		Applicant: facet.CountStrings(firstAuthors(publications)),
	}, nil
}

func (s *LegacyPublicationStore) GetByID(ctx context.Context, id string) (*domain.Publication, error) {
	publications, err := s.listAll(ctx, domain.PublicationFilters{})
	if err != nil {
		return nil, err
	}
	for _, p := range publications {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *LegacyPublicationStore) Create(ctx context.Context, input domain.Publication) (domain.Publication, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if input.Authors == nil {
		input.Authors = []string{}
	}
	s.overlay.Put(input)
	return input, nil
}

func (s *LegacyPublicationStore) Update(ctx context.Context, id string, patch domain.PublicationPatch) (*domain.Publication, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	updated := patch.Apply(*existing)
	updated.ID = id
	s.overlay.Put(updated)
	return &updated, nil
}

func (s *LegacyPublicationStore) Delete(ctx context.Context, id string) (bool, error) {
	s.overlay.Delete(id)
	return true, nil
}

// firstAuthors extracts the lead author of every publication.
func firstAuthors(publications []domain.Publication) []string {
	out := make([]string, 0, len(publications))
	for _, p := range publications {
		if len(p.Authors) > 0 {
			out = append(out, p.Authors[0])
		}
	}
	return out
}
