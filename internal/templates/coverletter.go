package templates

// builtinCoverLetters are the shipped cover letter templates. The default
// texts carry bracketed placeholder tokens; compose substitutes the ones it
// can resolve and leaves the rest visible for the candidate to fill in.
var builtinCoverLetters = []CoverLetterConfig{
	{
		Key:        "classic",
		Name:       "Classic",
		Category:   "General",
		FontFamily: "'Lato', sans-serif",
		FontSize:   "12pt",
		LineHeight: "1.5",
		Colors: Colors{
			Primary:    "#2c3e50",
			Secondary:  "#7f8c8d",
			Accent:     "#3498db",
			Text:       "#34495e",
			Background: "#ffffff",
			Border:     "#e5e7eb",
		},
		DefaultData: CoverLetterDefaults{
			Recipient: "Dear Hiring Manager",
			Intro:     "I am excited to apply for the [jobTitle] position at [company]. With my background in [field], I am confident in my ability to contribute to your team and help achieve [specificCompanyGoal].",
			Body:      "In my previous role at [previousCompany], I successfully [achievement], leveraging [skill1] and [skill2] to drive [specificOutcome]. I am eager to bring this expertise to [company] and support your mission of [specificCompanyGoal].",
			Closing:   "Thank you for considering my application. I would welcome the opportunity to discuss how my skills and experiences align with [company]'s goals. I look forward to hearing from you.",
		},
	},
	{
		Key:        "sleek",
		Name:       "Sleek",
		Category:   "General",
		FontFamily: "'Roboto', sans-serif",
		FontSize:   "11pt",
		LineHeight: "1.7",
		Colors: Colors{
			Primary:    "#1e3a8a",
			Secondary:  "#64748b",
			Accent:     "#3b82f6",
			Text:       "#1f2937",
			Background: "#ffffff",
			Border:     "#e5e7eb",
		},
		DefaultData: CoverLetterDefaults{
			Recipient: "Dear [RecipientName]",
			Intro:     "I am writing to express my interest in the [jobTitle] position at [company]. My experience in [field] has equipped me with the skills to deliver impactful results for your team.",
			Body:      "At [previousCompany], I led [specificProject], achieving [achievement] through the use of [skill1] and [skill2]. I am excited to bring this expertise to [company] and contribute to [specificCompanyGoal].",
			Closing:   "Thank you for your time and consideration. I'd be delighted to discuss how I can contribute to [company]'s success. Please feel free to contact me at your convenience.",
		},
	},
	{
		Key:        "innovate",
		Name:       "Innovate",
		Category:   "Technology",
		FontFamily: "'Inter', monospace",
		FontSize:   "10pt",
		LineHeight: "1.65",
		Colors: Colors{
			Primary:    "#2f4f4f",
			Secondary:  "#5f7f7f",
			Accent:     "#4ecdc4",
			Text:       "#1f1f1f",
			Background: "#ffffff",
			Border:     "#dbeafe",
		},
		DefaultData: CoverLetterDefaults{
			Recipient: "Dear [RecipientName] or Technology Team",
			Intro:     "I am eager to apply for the [jobTitle] position at [company], where I can leverage my expertise in [specificTechSkill] to drive innovative solutions.",
			Body:      "At [previousCompany], I developed [specificProject], improving [metric] by [percentage] using [skill1] and [skill2]. I am excited to bring this experience to [company] and contribute to [specificCompanyGoal].",
			Closing:   "Thank you for reviewing my application. I'd be thrilled to discuss how my technical skills can benefit [company]. I look forward to the possibility of connecting soon.",
		},
	},
	{
		Key:        "inspire",
		Name:       "Inspire",
		Category:   "Creative",
		FontFamily: "'Poppins', serif",
		FontSize:   "11pt",
		LineHeight: "1.8",
		Colors: Colors{
			Primary:    "#4b2e39",
			Secondary:  "#6b4e56",
			Accent:     "#b76e79",
			Text:       "#333333",
			Background: "#fdfdfd",
			Border:     "#b76e79",
		},
		DefaultData: CoverLetterDefaults{
			Recipient: "Dear [RecipientName] or Creative Team",
			Intro:     "I am excited to apply for the [jobTitle] role at [company]. My passion for [specificCreativeSkill] drives me to create work that inspires and engages audiences.",
			Body:      "At [previousCompany], I designed [specificProject], resulting in [achievement] by combining [skill1] with [skill2]. I am eager to bring my creativity to [company] and contribute to [specificCompanyGoal].",
			Closing:   "Thank you for considering my application. I'd love the chance to discuss how my creative perspective can elevate [company]. I hope to hear from you soon.",
		},
	},
	{
		Key:        "summit",
		Name:       "Summit",
		Category:   "Leadership",
		FontFamily: "'Montserrat', serif",
		FontSize:   "11.5pt",
		LineHeight: "1.75",
		Colors: Colors{
			Primary:    "#2d3748",
			Secondary:  "#718096",
			Accent:     "#3182ce",
			Text:       "#1a202c",
			Background: "#ffffff",
			Border:     "#718096",
		},
		DefaultData: CoverLetterDefaults{
			Recipient: "Dear [RecipientName] or Leadership Team",
			Intro:     "I am applying for the [jobTitle] position at [company], bringing [years] years of leadership experience in [field] to drive your team toward success.",
			Body:      "As [previousRole] at [previousCompany], I led [specificProject], achieving [achievement] through [specificLeadershipSkill]. I am ready to guide [company] toward [specificCompanyGoal] with strategic vision and measurable outcomes.",
			Closing:   "Thank you for your consideration. I am enthusiastic about the opportunity to discuss how my leadership can advance [company]'s objectives. I look forward to speaking with you.",
		},
	},
}
