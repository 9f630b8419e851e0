package layout

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

func sampleData() *types.ResumeData {
	return &types.ResumeData{
		Personal: types.Personal{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "555-0100"},
		Summary:  "Engineer and analyst.",
		Experience: []types.Entry{
			{Title: "Analyst", Company: "Babbage & Co", StartDate: "1840", EndDate: "1843"},
		},
		Skills: []string{"Mathematics", "Computation"},
	}
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func mustGet(t *testing.T, id string) *templates.TemplateConfig {
	t.Helper()
	cfg, err := templates.Get(id)
	require.NoError(t, err)
	return cfg
}

func TestEffectiveOrder_UnorderedKeysAppended(t *testing.T) {
	lay := &templates.Layout{
		SectionsOrder: []string{"summary", "experience"},
		HeaderType:    "none",
		Columns:       1,
	}
	data := sampleData() // also carries skills, not in the order
	order := EffectiveOrder(data, lay)
	assert.Equal(t, []string{"summary", "experience", "personal", "skills"}, order)
}

func TestEffectiveOrder_HeaderSuppressesPersonal(t *testing.T) {
	lay := &templates.Layout{
		SectionsOrder: []string{"personal", "personal.photo", "summary"},
		HeaderType:    "banner",
		Columns:       1,
	}
	order := EffectiveOrder(sampleData(), lay)
	assert.NotContains(t, order, "personal")
	assert.NotContains(t, order, "personal.photo")
	assert.Contains(t, order, "summary")
}

func TestEffectiveOrder_Deduplicates(t *testing.T) {
	lay := &templates.Layout{
		SectionsOrder: []string{"summary", "summary", "skills"},
		HeaderType:    "none",
		Columns:       1,
	}
	order := EffectiveOrder(sampleData(), lay)
	count := 0
	for _, key := range order {
		if key == "summary" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAssemble_FullDocument(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job")})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	assert.Equal(t, 1, doc.Find(".page").Length())
	assert.Equal(t, 1, doc.Find("h1").Length(), "exactly one identity header")
	assert.Contains(t, doc.Find("h1").Text(), "Ada Lovelace")
	assert.Contains(t, html, "@page")
}

func TestAssemble_SectionOrderFollowsTemplate(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job")})
	require.NoError(t, err)
	sum := strings.Index(html, ">Summary</h2>")
	exp := strings.Index(html, ">Experience</h2>")
	skl := strings.Index(html, ">Skills</h2>")
	require.Positive(t, sum)
	assert.Less(t, sum, exp)
	assert.Less(t, exp, skl)
}

func TestAssemble_SidebarDirection(t *testing.T) {
	right, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "software_developer")})
	require.NoError(t, err)
	assert.Contains(t, right, "flex-direction: row-reverse")

	left, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "consultant_modern")})
	require.NoError(t, err)
	assert.Contains(t, left, "flex-direction: row;")
	assert.NotContains(t, left, "row-reverse")
}

func TestAssemble_SidebarHoldsConfiguredSections(t *testing.T) {
	// software_developer keeps skills in the sidebar
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "software_developer")})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	sidebarHTML, err := doc.Find(`div[style*="flex-shrink: 0"]`).Html()
	require.NoError(t, err)
	assert.Contains(t, sidebarHTML, "Skills")
	assert.NotContains(t, sidebarHTML, "Experience")
}

func TestAssemble_NoSidebarWithoutSidebarSections(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "banking_professional")})
	require.NoError(t, err)
	assert.NotContains(t, html, "flex-direction: row")
}

func TestAssemble_HeaderSuppressesStandalonePersonal(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "corporate_classic")})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	// name appears exactly once: in the banner, not repeated as a section
	assert.Equal(t, 1, strings.Count(doc.Find("body").Text(), "Ada Lovelace"))
}

func TestAssemble_NoneHeaderRendersPersonalSection(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "academic_minimal")})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	assert.Contains(t, doc.Find("h1").Text(), "Ada Lovelace")
	assert.Contains(t, html, "ada@example.com | 555-0100")
}

func TestAssemble_PhotoDegradesWithoutImgTag(t *testing.T) {
	data := sampleData()
	data.Personal.Photo = "https://example.com/nope.jpg"
	html, err := Assemble(Input{Data: data, Config: mustGet(t, "software_developer")})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	assert.Equal(t, 0, doc.Find("img").Length())

	data.Personal.Photo = "data:image/png;base64,AAAA"
	html, err = Assemble(Input{Data: data, Config: mustGet(t, "software_developer")})
	require.NoError(t, err)
	doc = parseDoc(t, html)
	assert.Equal(t, 1, doc.Find("img").Length())
}

func TestAssemble_PageSizeByCountry(t *testing.T) {
	us, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job"), Country: "us"})
	require.NoError(t, err)
	assert.Contains(t, us, "size: Letter;")

	eu, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job"), Country: "eu"})
	require.NoError(t, err)
	assert.Contains(t, eu, "size: A4;")

	unset, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job")})
	require.NoError(t, err)
	assert.Contains(t, unset, "size: A4;")
}

func TestAssemble_BreakRulesPresent(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job")})
	require.NoError(t, err)
	assert.Contains(t, html, "break-inside: avoid")
	assert.Contains(t, html, "orphans: 3")
	assert.Contains(t, html, "width: 794px")
	assert.Contains(t, html, "min-height: 1123px")
}

func TestAssemble_DividersBetweenSections(t *testing.T) {
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job")})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	assert.Positive(t, doc.Find("hr.section-divider").Length())

	// card templates draw no dividers
	card, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "marketing_manager")})
	require.NoError(t, err)
	cardDoc := parseDoc(t, card)
	assert.Equal(t, 0, cardDoc.Find("hr.section-divider").Length())
}

func TestAssemble_StyleOverlayApplied(t *testing.T) {
	cfg := mustGet(t, "government_job")
	overlaid := cfg.Styles.WithColors(map[string]string{"primary": "#bada55"})
	html, err := Assemble(Input{Data: sampleData(), Config: cfg, Styles: overlaid})
	require.NoError(t, err)
	assert.Contains(t, html, "#bada55")
}

func TestAssemble_PrefixPageComesFirst(t *testing.T) {
	prefix := `<div class="page" id="cover-letter">Cover</div>`
	html, err := Assemble(Input{Data: sampleData(), Config: mustGet(t, "government_job"), Prefix: prefix})
	require.NoError(t, err)
	doc := parseDoc(t, html)
	assert.Equal(t, 2, doc.Find(".page").Length())
	assert.Less(t, strings.Index(html, "cover-letter"), strings.Index(html, "Ada Lovelace"))
}

func TestAssemble_MissingInputs(t *testing.T) {
	_, err := Assemble(Input{Config: mustGet(t, "government_job")})
	require.Error(t, err)
	var aerr *AssembleError
	assert.ErrorAs(t, err, &aerr)

	_, err = Assemble(Input{Data: sampleData()})
	assert.Error(t, err)
}

func TestFontLink_SupportedFamilies(t *testing.T) {
	assert.Contains(t, fontLink("'Inter', sans-serif"), "family=Inter")
	assert.Contains(t, fontLink("'Open Sans', sans-serif"), "family=Open+Sans")
	assert.Equal(t, "", fontLink("'Comic Sans MS', cursive"))
	assert.Equal(t, "", fontLink(""))
}

func TestAssemble_Idempotent(t *testing.T) {
	in := Input{Data: sampleData(), Config: mustGet(t, "software_developer")}
	first, err := Assemble(in)
	require.NoError(t, err)
	second, err := Assemble(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
