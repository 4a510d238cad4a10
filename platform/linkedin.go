package platform

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.FeedStrategy = (*LinkedIn)(nil)

var (
	activityURN = regexp.MustCompile(`urn:li:activity:\d+`)
	linkedInJob = regexp.MustCompile(`/jobs/view/(\d+)`)
)

// LinkedIn extracts professional-network posts and job offers.
type LinkedIn struct {
	feed
}

// NewLinkedIn creates a new LinkedIn strategy.
func NewLinkedIn() *LinkedIn {
	return &LinkedIn{feed{
		family: family{
			name:  "linkedin",
			label: "LinkedIn",
			icon:  "💼",
			sites: []site{{match: "linkedin.com", name: "LinkedIn", tag: "linkedin", icon: "💼"}},
		},
		postSelector: `div.feed-shared-update-v2, div[data-urn^="urn:li:activity:"], div[data-id^="urn:li:activity:"]`,
		authors: []string{
			`.update-components-actor__name span[aria-hidden="true"]`,
			".update-components-actor__name",
			".feed-shared-actor__name",
		},
		texts: []string{
			".update-components-text",
			".feed-shared-text",
			".feed-shared-update-v2__description",
		},
		images: []string{".update-components-image img", "img.feed-shared-image__image"},
		permalinks: []*regexp.Regexp{
			regexp.MustCompile(`/feed/update/urn:li:activity:\d+`),
			regexp.MustCompile(`/posts/[\w-]+`),
		},
		excluded: []string{"/in/", "/company/", "/follow"},
		actions:  []string{".feed-shared-social-action-bar", ".social-actions"},
	}}
}

// Extract returns a job offer on job pages and a post otherwise.
func (s *LinkedIn) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(d.Title, " | LinkedIn")

	jobID := linkedInJobID(page.URL())
	if jobID == "" {
		d.Tags = append(d.Tags, "post")
		if urn := activityURN.FindString(page.URL()); urn != "" {
			d.URL = "https://www.linkedin.com/feed/update/" + urn + "/"
		}
		return pinmark.NewExtractionResult(d)
	}

	d.URL = "https://www.linkedin.com/jobs/view/" + jobID + "/"
	if title := firstText(page,
		".job-details-jobs-unified-top-card__job-title",
		"h1.top-card-layout__title",
		"h1",
	); title != "" {
		d.Title = title
	}
	company := firstText(page,
		".job-details-jobs-unified-top-card__company-name a",
		".job-details-jobs-unified-top-card__company-name",
		"a.topcard__org-name-link",
	)
	if company != "" && !strings.Contains(d.Title, company) {
		d.Title = d.Title + " at " + company
	}
	d.Tags = append(d.Tags, "job", TagOf(company))
	return pinmark.NewExtractionResult(d)
}

// ExtractFromPost returns a single update of the feed. The activity URN on
// the update container is the most reliable permalink source.
func (s *LinkedIn) ExtractFromPost(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult {
	d, _, text := s.post(page, post)
	if urn := activityURN.FindString(firstNonEmpty(post.Attr("data-urn"), post.Attr("data-id"))); urn != "" {
		d.URL = "https://www.linkedin.com/feed/update/" + urn + "/"
	}
	d.Tags = append(d.Tags, "post")
	d.Tags = append(d.Tags, hashtags(text, MaxPostHashtags)...)
	return pinmark.NewExtractionResult(d)
}

// linkedInJobID returns the job id of a job view or a job search URL with a
// selected job.
func linkedInJobID(raw string) string {
	if m := linkedInJob.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	u, err := url.Parse(raw)
	if err != nil || !strings.HasPrefix(u.Path, "/jobs") {
		return ""
	}
	return u.Query().Get("currentJobId")
}
