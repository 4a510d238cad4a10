package platform

import (
	"net/url"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Jobs)(nil)

// Jobs extracts job offers of job boards and applicant tracking systems.
type Jobs struct {
	family
}

// NewJobs creates a new Jobs strategy.
func NewJobs() *Jobs {
	return &Jobs{family{
		name:  "jobs",
		label: "Jobs",
		icon:  "🧑‍💼",
		sites: []site{
			{match: "indeed.com", name: "Indeed", tag: "indeed", icon: "🧑‍💼"},
			{match: "glassdoor.", name: "Glassdoor", tag: "glassdoor", icon: "🚪"},
			{match: "greenhouse.io", name: "Greenhouse", tag: "greenhouse", icon: "🌱"},
			{match: "lever.co", name: "Lever", tag: "lever", icon: "🧑‍💼"},
			{match: "wellfound.com", name: "Wellfound", tag: "wellfound", icon: "🚀"},
			{match: "workable.com", name: "Workable", tag: "workable", icon: "🧑‍💼"},
		},
	}}
}

// Extract returns the offer titled with the role and the hiring company.
func (s *Jobs) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	posting := jsonLDOfType(JSONLDEntries(jsonLDBlocks(page)), "JobPosting")

	role := firstNonEmpty(
		jsonText(posting["title"]),
		firstText(page, `h1.jobsearch-JobInfoHeader-title`, ".posting-headline h2", "h1.app-title", "h1"),
	)
	company := firstNonEmpty(
		jsonText(jsonPath(posting, "hiringOrganization", "name")),
		firstText(page,
			`[data-testid="inlineHeader-companyName"]`,
			`[data-company-name="true"]`,
			".company-name",
			".company",
		),
	)
	if role != "" {
		d.Title = joinNonEmpty(" at ", role, company)
	}
	d.Title = trimSuffixes(d.Title, " - Indeed.com", " | Glassdoor", " | Wellfound", " - Workable")

	if jk := indeedJobKey(page.URL()); jk != "" {
		d.URL = "https://" + page.Hostname() + "/viewjob?jk=" + jk
	}

	location := jsonText(jsonPath(posting, "jobLocation", "address", "addressLocality"))
	d.Tags = append(d.Tags, "job")
	for _, t := range []string{company, location} {
		if tag := TagOf(t); tag != "" {
			d.Tags = append(d.Tags, tag)
		}
	}
	return pinmark.NewExtractionResult(d)
}

func indeedJobKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !hostContains(u.Hostname(), "indeed.com") {
		return ""
	}
	return firstNonEmpty(u.Query().Get("jk"), u.Query().Get("vjk"))
}
