package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the applicant-tracking system hosting a job
// posting. Knowing the platform lets extraction target the posting
// body directly instead of falling back to generic selectors.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// platformHosts maps host substrings to their platform.
var platformHosts = map[string]Platform{
	"greenhouse.io":     PlatformGreenhouse,
	"lever.co":          PlatformLever,
	"workday.com":       PlatformWorkday,
	"myworkdayjobs.com": PlatformWorkday,
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for fragment, platform := range platformHosts {
		if strings.Contains(host, fragment) {
			return platform
		}
	}
	return PlatformUnknown
}

// platformContent holds the per-platform content selectors, most
// specific first.
var platformContent = map[Platform][]string{
	PlatformGreenhouse: {
		".job__description.body",
		".job__description",
		"#content",
		".job-post-container",
	},
	PlatformLever: {
		".posting-page",
		".posting-description",
		".content",
	},
	PlatformWorkday: {
		"[data-automation-id='jobDescription']",
		".job-description",
	},
}

// PlatformContentSelectors returns the content selectors for a
// platform, falling back to the generic job posting selectors.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContent[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// commonNoiseSelectors are stripped from job postings on every
// platform: application forms, disclosure sections, share widgets, and
// consent banners contribute nothing to requirement extraction.
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",

	".voluntary-disclosure",
	".eeo-statement",
	".self-identification",

	".social-share",
	".share-buttons",

	".cookie-banner",
	".cookie-consent",
}

// platformNoise holds the additional noise selectors per platform.
var platformNoise = map[Platform][]string{
	PlatformGreenhouse: {
		".application--wrapper",
		".voluntary-self-id",
		".post-apply",
	},
	PlatformLever: {
		".apply-section",
		".posting-apply",
	},
	PlatformWorkday: {
		"[data-automation-id='applyButton']",
		".application-section",
	},
}

// PlatformNoiseSelectors returns the noise exclusion selectors for a
// platform, always including the common set.
func PlatformNoiseSelectors(platform Platform) []string {
	return append(append([]string{}, commonNoiseSelectors...), platformNoise[platform]...)
}
