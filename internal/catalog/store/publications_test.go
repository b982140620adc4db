package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"sciport/internal/catalog/legacy"
	"sciport/internal/domain"
	"sciport/pkg/pagination"
)

const publicationsMainKey = "публикации/русн/" + publicationsMainQuery

type PublicationStoreSuite struct {
	suite.Suite
	exec  *fakeExecutor
	store *LegacyPublicationStore
	ctx   context.Context
}

func (s *PublicationStoreSuite) SetupTest() {
	s.exec = &fakeExecutor{
		rows: map[string][]legacy.Row{
			publicationsMainKey: {
				{
					"title":  "Graphene-based sensors",
					"name":   "Ахметова Д.",
					"number": "AP-1",
				},
				{
					"name_ru": "Обзор биополимеров",
					"name":    "Серик Б.",
					"number":  "AP-2",
				},
			},
		},
		errs: map[string]error{},
	}
	s.store = NewLegacyPublicationStore(newTestReader(s.T(), s.exec))
	s.ctx = context.Background()
}

func TestPublicationStoreSuite(t *testing.T) {
	suite.Run(t, new(PublicationStoreSuite))
}

func (s *PublicationStoreSuite) list(f domain.PublicationFilters) []domain.Publication {
	result, err := s.store.List(s.ctx, f, pagination.Params{})
	s.Require().NoError(err)
	return result.Items
}

func (s *PublicationStoreSuite) TestNormalization() {
	items := s.list(domain.PublicationFilters{})
	s.Require().Len(items, 2)

	s.Equal("Graphene-based sensors", items[0].Title)
	s.Equal([]string{"Ахметова Д."}, items[0].Authors)
	s.Equal("AP-1", items[0].ProjectID)

	s.Run("name_ru backs a missing title", func() {
		s.Equal("Обзор биополимеров", items[1].Title)
	})

	s.Run("ids derive from the title and stay stable", func() {
		s.NotEmpty(items[0].ID)
		s.Equal(items[0].ID, s.list(domain.PublicationFilters{})[0].ID)
		s.NotEqual(items[0].ID, items[1].ID)
	})
}

func (s *PublicationStoreSuite) TestFilters() {
	s.Run("query matches the title case-insensitively", func() {
		items := s.list(domain.PublicationFilters{Query: "graphene"})
		s.Require().Len(items, 1)
		s.Equal("Graphene-based sensors", items[0].Title)
	})

	s.Run("type comparison is exact", func() {
		items := s.list(domain.PublicationFilters{Type: "Ахметова Д."})
		s.Require().Len(items, 1)
		s.Empty(s.list(domain.PublicationFilters{Type: "ахметова д."}))
	})
}

func (s *PublicationStoreSuite) TestOverlay() {
	created, err := s.store.Create(s.ctx, domain.Publication{Title: "Новая статья", Year: 2026})
	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.NotNil(created.Authors)

	items := s.list(domain.PublicationFilters{})
	s.Require().Len(items, 3)
	s.Equal(created.ID, items[2].ID)

	s.Run("year filter only matches records that carry one", func() {
		items := s.list(domain.PublicationFilters{Year: 2026})
		s.Require().Len(items, 1)
		s.Equal("Новая статья", items[0].Title)
	})

	ok, err := s.store.Delete(s.ctx, created.ID)
	s.Require().NoError(err)
	s.True(ok)
	s.Len(s.list(domain.PublicationFilters{}), 2)
}

func (s *PublicationStoreSuite) TestFacets() {
	options, err := s.store.GetFilters(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Ахметова Д.", "Серик Б."}, options.Type)
	s.Empty(options.Year)

	meta, err := s.store.GetFilterMeta(s.ctx, domain.PublicationFilters{})
	s.Require().NoError(err)
	s.Require().Len(meta.Applicant, 2)
	s.Equal(1, meta.Applicant[0].Count)
}
