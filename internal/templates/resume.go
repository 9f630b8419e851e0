package templates

import "github.com/jonathan/resume-studio/internal/types"

// standardOrder is the section order most templates start from.
var standardOrder = []string{
	"personal", "personal.photo", "summary", "experience", "education",
	"skills", "projects", "certifications", "languages", "achievements",
	"customSections",
}

// builtinTemplates are the shipped resume templates, one per header variant.
// Validated by buildRegistry at init.
var builtinTemplates = []TemplateConfig{
	{
		Key:      "government_job",
		Name:     "Government Job",
		Category: "Public Sector",
		Subtitle: "Government Service Professional",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			Sidebar:         "",
			HeaderType:      "official-header",
			SectionDividers: true,
			Columns:         1,
		},
		Styles: Styles{
			FontFamily: "'Lato', sans-serif",
			FontSize:   "10.5pt",
			LineHeight: "1.5",
			Colors: Colors{
				Primary:    "#1f3a5f",
				Secondary:  "#3d5a80",
				Accent:     "#c9a227",
				Text:       "#2d3748",
				Background: "#ffffff",
				Border:     "#e2e8f0",
			},
			Photo:   Photo{Size: "60px", Shape: "square"},
			Spacing: Spacing{SectionGap: "18px", ItemGap: "10px"},
		},
		DefaultData: types.ResumeData{
			Summary: "Dedicated public servant with a record of reliable, policy-compliant delivery.",
		},
	},
	{
		Key:      "software_developer",
		Name:     "Software Developer",
		Category: "Technology",
		Subtitle: "Software Developer & Tech Enthusiast",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			SidebarSections: []string{"skills", "languages", "certifications"},
			Sidebar:         "right",
			SidebarWidth:    "260px",
			HeaderType:      "modern-tech",
			SectionDividers: true,
			Columns:         2,
		},
		Styles: Styles{
			FontFamily: "'Inter', sans-serif",
			FontSize:   "10pt",
			LineHeight: "1.55",
			Colors: Colors{
				Primary:        "#0f172a",
				Secondary:      "#334155",
				Accent:         "#38bdf8",
				Text:           "#1e293b",
				Background:     "#ffffff",
				Sidebar:        "#f1f5f9",
				Border:         "#e2e8f0",
				HeaderGradient: "linear-gradient(135deg, #0f172a 0%, #1e40af 100%)",
			},
			Photo:   Photo{Size: "80px", Shape: "rounded", Border: "3px solid rgba(255,255,255,0.3)"},
			Spacing: Spacing{SectionGap: "16px", ItemGap: "10px"},
		},
		DefaultData: types.ResumeData{
			Skills: []string{"Problem Solving", "Version Control", "Code Review"},
		},
	},
	{
		Key:      "banking_professional",
		Name:     "Banking Professional",
		Category: "Finance",
		Subtitle: "Banking & Finance Professional",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			HeaderType:      "executive-banner",
			SectionDividers: true,
			Columns:         1,
		},
		Styles: Styles{
			FontFamily: "'Lora', serif",
			FontSize:   "10.5pt",
			LineHeight: "1.6",
			Colors: Colors{
				Primary:    "#14532d",
				Secondary:  "#166534",
				Accent:     "#ca8a04",
				Text:       "#1c1917",
				Background: "#ffffff",
				Border:     "#d6d3d1",
			},
			Photo:   Photo{Size: "70px", Shape: "circle"},
			Spacing: Spacing{SectionGap: "20px", ItemGap: "12px"},
		},
	},
	{
		Key:      "graphic_designer",
		Name:     "Graphic Designer",
		Category: "Creative",
		Subtitle: "Creative Designer & Visual Artist",
		Layout: Layout{
			SectionsOrder:   []string{"personal", "personal.photo", "summary", "projects", "experience", "skills", "education", "customSections"},
			SidebarSections: []string{"skills", "languages"},
			Sidebar:         "left",
			SidebarWidth:    "240px",
			HeaderType:      "creative-hero",
			SectionCard:     true,
			Columns:         2,
		},
		Styles: Styles{
			FontFamily: "'Poppins', sans-serif",
			FontSize:   "10pt",
			LineHeight: "1.6",
			Colors: Colors{
				Primary:        "#7c2d92",
				Secondary:      "#c026d3",
				Accent:         "#fbbf24",
				Text:           "#27272a",
				Background:     "#fefefe",
				Sidebar:        "#faf5ff",
				CardBg:         "#faf9fb",
				Border:         "#f0e6f6",
				HeaderGradient: "linear-gradient(135deg, #7c2d92 0%, #c026d3 100%)",
			},
			Photo:   Photo{Size: "90px", Shape: "rounded", Border: "4px solid rgba(255,255,255,0.9)", Shadow: "0 10px 30px rgba(0,0,0,0.3)"},
			Spacing: Spacing{SectionGap: "16px", ItemGap: "10px"},
		},
	},
	{
		Key:      "healthcare_professional",
		Name:     "Healthcare Professional",
		Category: "Healthcare",
		Subtitle: "Healthcare Professional",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			HeaderType:      "medical-banner",
			SectionDividers: true,
			Columns:         1,
		},
		Styles: Styles{
			FontFamily: "'Open Sans', sans-serif",
			FontSize:   "10.5pt",
			LineHeight: "1.55",
			Colors: Colors{
				Primary:    "#0e7490",
				Secondary:  "#06b6d4",
				Accent:     "#dc2626",
				Text:       "#164e63",
				Background: "#ffffff",
				Border:     "#cffafe",
			},
			Photo:   Photo{Size: "80px", Shape: "circle", Border: "3px solid rgba(255,255,255,0.9)"},
			Spacing: Spacing{SectionGap: "18px", ItemGap: "10px"},
		},
	},
	{
		Key:      "data_scientist",
		Name:     "Data Scientist",
		Category: "Technology",
		Subtitle: "Data Scientist & ML Engineer",
		Layout: Layout{
			SectionsOrder:   []string{"personal", "personal.photo", "summary", "skills", "experience", "projects", "education", "certifications"},
			SidebarSections: []string{"skills", "certifications", "languages"},
			Sidebar:         "right",
			SidebarWidth:    "250px",
			HeaderType:      "tech-banner",
			SectionDividers: true,
			Columns:         2,
		},
		Styles: Styles{
			FontFamily: "'Roboto', sans-serif",
			FontSize:   "10pt",
			LineHeight: "1.5",
			Colors: Colors{
				Primary:    "#18181b",
				Secondary:  "#3f3f46",
				Accent:     "#22d3ee",
				Text:       "#27272a",
				Background: "#ffffff",
				Sidebar:    "#fafafa",
				Border:     "#e4e4e7",
			},
			Photo:   Photo{Size: "70px", Shape: "rounded", Border: "2px solid rgba(255,255,255,0.8)"},
			Spacing: Spacing{SectionGap: "16px", ItemGap: "8px"},
		},
	},
	{
		Key:      "corporate_classic",
		Name:     "Corporate Classic",
		Category: "Professional",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			HeaderType:      "banner",
			SectionDividers: true,
			Columns:         1,
		},
		Styles: Styles{
			FontFamily: "'Montserrat', sans-serif",
			FontSize:   "10.5pt",
			LineHeight: "1.55",
			Colors: Colors{
				Primary:    "#1a365d",
				Secondary:  "#4a5568",
				Accent:     "#2b6cb0",
				Text:       "#2d3748",
				Background: "#ffffff",
				Border:     "#e2e8f0",
			},
			Photo:   Photo{Size: "56px", Shape: "circle", Shadow: "0 2px 8px rgba(0,0,0,0.10)"},
			Spacing: Spacing{SectionGap: "18px", ItemGap: "10px"},
		},
	},
	{
		Key:      "consultant_modern",
		Name:     "Consultant Modern",
		Category: "Professional",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			SidebarSections: []string{"skills", "languages", "achievements"},
			Sidebar:         "left",
			SidebarWidth:    "260px",
			HeaderType:      "picture-left",
			SectionDividers: true,
			Columns:         2,
		},
		Styles: Styles{
			FontFamily: "'Inter', sans-serif",
			FontSize:   "10pt",
			LineHeight: "1.6",
			Colors: Colors{
				Primary:    "#312e81",
				Secondary:  "#6366f1",
				Accent:     "#f59e0b",
				Text:       "#1f2937",
				Background: "#ffffff",
				Sidebar:    "#eef2ff",
				Border:     "#e0e7ff",
			},
			Photo:   Photo{Size: "44px", Shape: "circle"},
			Spacing: Spacing{SectionGap: "16px", ItemGap: "10px"},
		},
	},
	{
		Key:      "academic_minimal",
		Name:     "Academic Minimal",
		Category: "Academic",
		Layout: Layout{
			SectionsOrder:   []string{"personal", "summary", "education", "experience", "customSections", "skills", "languages", "achievements"},
			HeaderType:      "none",
			SectionDividers: true,
			Columns:         1,
		},
		Styles: Styles{
			FontFamily: "'Lato', serif",
			FontSize:   "11pt",
			LineHeight: "1.6",
			Colors: Colors{
				Primary:    "#1c1917",
				Secondary:  "#57534e",
				Accent:     "#78350f",
				Text:       "#292524",
				Background: "#ffffff",
				Border:     "#e7e5e4",
			},
			Spacing: Spacing{SectionGap: "20px", ItemGap: "12px"},
		},
	},
	{
		Key:      "marketing_manager",
		Name:     "Marketing Manager",
		Category: "Marketing",
		Layout: Layout{
			SectionsOrder:   standardOrder,
			SidebarSections: []string{"skills", "certifications"},
			Sidebar:         "right",
			SidebarWidth:    "240px",
			HeaderType:      "picture-top",
			SectionCard:     true,
			Columns:         2,
		},
		Styles: Styles{
			FontFamily: "'Poppins', sans-serif",
			FontSize:   "10pt",
			LineHeight: "1.55",
			Colors: Colors{
				Primary:    "#9d174d",
				Secondary:  "#db2777",
				Accent:     "#fb923c",
				Text:       "#3f3f46",
				Background: "#ffffff",
				Sidebar:    "#fdf2f8",
				CardBg:     "#fdfbfc",
				Border:     "#fce7f3",
			},
			Photo:   Photo{Size: "48px", Shape: "circle"},
			Spacing: Spacing{SectionGap: "16px", ItemGap: "10px"},
		},
	},
}
