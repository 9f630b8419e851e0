package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/session"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// flakyEngine fails its first N renders, then succeeds.
type flakyEngine struct {
	failures int
	calls    int
}

func (f *flakyEngine) Start(ctx context.Context) error  { return nil }
func (f *flakyEngine) Healthy(ctx context.Context) bool { return true }
func (f *flakyEngine) Stop()                            {}

func (f *flakyEngine) RenderPDF(ctx context.Context, html string, opts session.RenderOptions) ([]byte, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, &session.SessionError{Op: "render pdf", Cause: errors.New("tab crashed")}
	}
	return []byte("%PDF-1.7 fake"), nil
}

func newGenerator(engine session.Engine) *Generator {
	mgr := session.NewManager(session.WithEngineFactory(func() session.Engine { return engine }))
	return &Generator{Sessions: mgr}
}

func rawData() map[string]any {
	return map[string]any{
		"personal": map[string]any{
			"name":  "Ada Lovelace",
			"email": "ada@example.com",
		},
		"summary": "Engineer and analyst.",
		"skills":  []any{"Mathematics"},
	}
}

func TestComposeHTML_DefaultTemplateOnEmptyID(t *testing.T) {
	g := &Generator{}
	html, err := g.ComposeHTML(Request{Data: rawData()})
	require.NoError(t, err)
	assert.Contains(t, html, "Ada Lovelace")
	// the default template renders the official header strapline when the
	// data has no job title
	assert.Contains(t, html, "Government Service Professional")
}

func TestComposeHTML_UnknownTemplate(t *testing.T) {
	g := &Generator{}
	_, err := g.ComposeHTML(Request{Data: rawData(), Template: "nope"})
	require.Error(t, err)
	var notFound *templates.ErrTemplateNotFound
	require.ErrorAs(t, err, &notFound)
	assert.NotEmpty(t, notFound.Valid)
}

func TestComposeHTML_CoverLetterPageFirst(t *testing.T) {
	g := &Generator{}
	html, err := g.ComposeHTML(Request{
		Data:        rawData(),
		CoverLetter: &types.CoverLetterData{JobTitle: "Analyst", Company: "Babbage & Co"},
	})
	require.NoError(t, err)
	cover := strings.Index(html, "cover-letter")
	resume := strings.Index(html, "Government Service Professional")
	require.Positive(t, cover)
	require.Positive(t, resume)
	assert.Less(t, cover, resume)
}

func TestComposeHTML_NoCoverLetterByDefault(t *testing.T) {
	g := &Generator{}
	html, err := g.ComposeHTML(Request{Data: rawData()})
	require.NoError(t, err)
	assert.NotContains(t, html, "cover-letter")
}

func TestComposeHTML_Idempotent(t *testing.T) {
	g := &Generator{}
	req := Request{Data: rawData(), Template: "software_developer"}
	first, err := g.ComposeHTML(req)
	require.NoError(t, err)
	second, err := g.ComposeHTML(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeHTML_CustomColorsApplied(t *testing.T) {
	g := &Generator{}
	html, err := g.ComposeHTML(Request{
		Data:         rawData(),
		Template:     "government_job",
		CustomColors: map[string]string{"primary": "#123456"},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "#123456")
}

func TestMergeDefaults_CallerDataWins(t *testing.T) {
	defaults := &types.ResumeData{Summary: "Default summary", Skills: []string{"Default skill"}}
	data := types.ResumeData{Summary: "Mine", Skills: []string{"Go"}}
	merged := mergeDefaults(data, defaults)
	assert.Equal(t, "Mine", merged.Summary)
	assert.Equal(t, []string{"Go"}, merged.Skills)
}

func TestMergeDefaults_FillsEmptyFields(t *testing.T) {
	defaults := &types.ResumeData{Summary: "Default summary", Skills: []string{"Teamwork"}}
	merged := mergeDefaults(types.ResumeData{}, defaults)
	assert.Equal(t, "Default summary", merged.Summary)
	assert.Equal(t, []string{"Teamwork"}, merged.Skills)
}

func TestGeneratePDF_Success(t *testing.T) {
	g := newGenerator(&flakyEngine{})
	defer g.Sessions.Close()

	res, err := g.GeneratePDF(context.Background(), Request{Data: rawData()})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), res.PDF)
	assert.Equal(t, "government_job", res.Template)
	assert.NotEmpty(t, res.HTML)
	assert.NotEqual(t, res.RenderID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestGeneratePDF_RetriesOnceOnSessionFault(t *testing.T) {
	engine := &flakyEngine{failures: 1}
	g := newGenerator(engine)
	defer g.Sessions.Close()

	res, err := g.GeneratePDF(context.Background(), Request{Data: rawData()})
	require.NoError(t, err, "single fault must be transparent")
	assert.Equal(t, []byte("%PDF-1.7 fake"), res.PDF)
	assert.Equal(t, 2, engine.calls)
}

func TestGeneratePDF_SecondFailureSurfaces(t *testing.T) {
	engine := &flakyEngine{failures: 2}
	g := newGenerator(engine)
	defer g.Sessions.Close()

	_, err := g.GeneratePDF(context.Background(), Request{Data: rawData()})
	require.Error(t, err)
	var failed *RenderFailedError
	assert.ErrorAs(t, err, &failed)
	assert.Equal(t, 2, engine.calls, "exactly one retry")
}

func TestGeneratePDF_ComposeErrorSkipsRender(t *testing.T) {
	engine := &flakyEngine{}
	g := newGenerator(engine)
	defer g.Sessions.Close()

	_, err := g.GeneratePDF(context.Background(), Request{Data: rawData(), Template: "nope"})
	require.Error(t, err)
	assert.Zero(t, engine.calls)
}

func TestGeneratePDF_ProgressStages(t *testing.T) {
	var stages []string
	g := newGenerator(&flakyEngine{})
	defer g.Sessions.Close()
	g.Progress = func(stage string) { stages = append(stages, stage) }

	_, err := g.GeneratePDF(context.Background(), Request{Data: rawData()})
	require.NoError(t, err)
	assert.Contains(t, stages, "normalize")
	assert.Contains(t, stages, "render")
}
