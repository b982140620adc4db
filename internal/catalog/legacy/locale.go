package legacy

import "fmt"

// Catalog domains as spelled in the legacy template tree.
const (
	DomainProjects     = "проекты"
	DomainEmployees    = "сотрудники"
	DomainPublications = "публикации"
	DomainFinances     = "финансы"
)

// Domains is the closed set of supported catalog domains.
var Domains = []string{DomainProjects, DomainEmployees, DomainPublications, DomainFinances}

// localeOverrides maps {domain, application locale} to the token the legacy
// schema actually uses for that domain. The legacy tree was named by different
// teams, so the same base locale resolves differently per domain. Domains
// without an override use the application locale as-is.
var localeOverrides = map[string]map[string]string{
	DomainEmployees:    {"рус": "ru"},
	DomainPublications: {"рус": "русн"},
	DomainFinances:     {"рус": "ру"},
}

// resolveLocale returns the schema locale token for a domain.
func resolveLocale(domain, appLocale string) string {
	if byLocale, ok := localeOverrides[domain]; ok {
		if resolved, ok := byLocale[appLocale]; ok {
			return resolved
		}
	}
	return appLocale
}

// validateLocaleTable confirms every override references a supported domain.
// Run at startup so a typo in the table fails fast instead of producing
// template-not-found errors at request time.
func validateLocaleTable() error {
	supported := make(map[string]struct{}, len(Domains))
	for _, d := range Domains {
		supported[d] = struct{}{}
	}
	for domain := range localeOverrides {
		if _, ok := supported[domain]; !ok {
			return fmt.Errorf("locale override for unknown domain %q", domain)
		}
	}
	return nil
}
