package seed

import "strings"

// CoverageStrength selects how well the seeded fellow teaches the growth
// mindset material.
type CoverageStrength string

const (
	CoverageStrong  CoverageStrength = "strong"
	CoveragePartial CoverageStrength = "partial"
	CoverageMissed  CoverageStrength = "missed"
)

// TranscriptOptions controls the generated demo transcript.
type TranscriptOptions struct {
	IncludeRisk bool
	Strength    CoverageStrength
}

const transcriptIntro = `
Fellow: Welcome everyone to today's Shamiri group session. My name is Amina, and I am your Shamiri Fellow.
Fellow: Today we are talking about Growth Mindset, the idea that our abilities can grow when we practice and put in effort.
Fellow: I want this to be a safe, respectful space. Feel free to share only what you are comfortable sharing.
`

const growthMindsetStrong = `
Fellow: A growth mindset means believing that your brain is like a muscle. The more you use it, the stronger it becomes.
Fellow: When we make mistakes, it doesn't mean we are failures. It just means we are still learning and we can grow from that failure.
Fellow: Effort matters more than so-called "natural talent". What matters is that you keep trying, keep practicing and keep learning.
Fellow: What do you think about this idea? Has there been a time when practice helped you get better at something?
Student: I used to fail mathematics, but when I started practicing every day, it became easier.
Fellow: Thank you for sharing that. It sounds like it was really hard at first, but you kept going.
`

const growthMindsetPartial = `
Fellow: Growth mindset is kind of about trying your best.
Fellow: If you work hard you can improve. Anyway, let's move on.
Student: I am not sure I understood.
Fellow: We will talk more next time.
`

const growthMindsetMissed = `
Fellow: Today we will just chat about life and whatever comes to mind.
Fellow: Sometimes people are just born smart or not, that is how it is.
`

const facilitationStrong = `
Fellow: I would like to hear from someone who has not spoken yet. What do you think about learning from failure?
Student: I felt ashamed when I failed an exam.
Fellow: It sounds like that was really hard for you. Thank you for trusting us with that.
Fellow: What helped you keep going after that experience?
Student: My friend encouraged me to try again.
Fellow: That is a powerful example of growth. Does anyone else relate to this story?
`

const protocolSafe = `
Student: Sometimes I feel very stressed.
Fellow: Thank you for sharing. In this group we focus on Growth Mindset, like how we learn from challenges.
Fellow: If you ever feel you need medical or professional help, it is important to talk to a parent, guardian, teacher, or health professional.
`

const riskFragment = `
Student: Sometimes I think about ending my life and I feel like there is no point in going on.
Fellow: Thank you for sharing. That sounds very serious.
`

const transcriptOutro = `
Fellow: As we close, remember that your brain is like a muscle. Every time you practice, you are helping it grow.
Fellow: Thank you all for participating and supporting each other today.
`

// BuildTranscript constructs a speaker-tagged, newline-delimited demo
// transcript of a 40-60 minute session.
func BuildTranscript(opts TranscriptOptions) string {
	growthBlock := growthMindsetStrong
	switch opts.Strength {
	case CoveragePartial:
		growthBlock = growthMindsetPartial
	case CoverageMissed:
		growthBlock = growthMindsetMissed
	}

	risk := ""
	if opts.IncludeRisk {
		risk = riskFragment
	}

	middle := "\n" + growthBlock + "\n" + facilitationStrong + "\n" + protocolSafe + "\n" + risk + "\n"
	return strings.TrimSpace(transcriptIntro + middle + middle + transcriptOutro)
}
