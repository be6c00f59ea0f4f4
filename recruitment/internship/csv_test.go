package internship

import (
	"strings"
	"testing"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Title,Description,Requirements,Location,Sector",
		`Data Intern,Pipelines,"python|sql, spark",Bangalore,Software`,
		"Marketing Intern,,,Delhi,Marketing",
		",No title,go,Pune,Software",
		"",
		"Ops Intern,Infra,docker;k8s,,Cloud",
	}, "\n")

	batch, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, batch.Rows, 2)
	assert.Equal(t, 2, batch.Rows[0].Line)
	assert.Equal(t, "Data Intern", batch.Rows[0].Request.Title)
	assert.Equal(t, []string{"python", "sql", "spark"}, batch.Rows[0].Request.Requirements)
	assert.Equal(t, "Marketing Intern", batch.Rows[1].Request.Title)
	assert.Empty(t, batch.Rows[1].Request.Requirements)

	require.Len(t, batch.Skipped, 2)
	assert.Equal(t, 4, batch.Skipped[0].Row)
	assert.Equal(t, 6, batch.Skipped[1].Row)
}

func TestParseCSV_HeaderOrderAndCase(t *testing.T) {
	input := "SECTOR,location,REQUIREMENTS,title,Description\nSoftware,Remote,go,Backend Intern,APIs\n"

	batch, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, batch.Rows, 1)

	req := batch.Rows[0].Request
	assert.Equal(t, "Backend Intern", req.Title)
	assert.Equal(t, "Remote", req.Location)
	assert.Equal(t, "Software", req.Sector)
	assert.Equal(t, []string{"go"}, req.Requirements)
}

func TestParseCSV_MissingColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("title,location\nA,B\n"))
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, CodeMissingCSVColumns))
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, CodeInvalidCSV))
}

func TestSplitRequirements(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, SplitRequirements(" a | b;c , d "))
	assert.Equal(t, []string{}, SplitRequirements(""))
}

func TestInternshipValidate(t *testing.T) {
	i := Internship{Title: " ", Location: "x"}
	i.Normalize()

	err := i.Validate()
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"title", "sector"}, e.Details["fields"])
}

func TestSearchMatches(t *testing.T) {
	i := Internship{Title: "Data Analyst", Description: "SQL work", Location: "New York", Sector: "Finance"}

	assert.True(t, SearchInternshipsRequest{}.Matches(i))
	assert.True(t, SearchInternshipsRequest{Query: "sql"}.Matches(i))
	assert.True(t, SearchInternshipsRequest{Location: "york", Sector: "FINANCE"}.Matches(i))
	assert.False(t, SearchInternshipsRequest{Sector: "Fin"}.Matches(i))
	assert.False(t, SearchInternshipsRequest{Query: "marketing"}.Matches(i))
}

func TestSearchInternshipsRequest_TrimsFilters(t *testing.T) {
	item := Internship{Title: "Data Engineer", Description: "Pipelines", Location: "York", Sector: "Software"}

	assert.True(t, SearchInternshipsRequest{Query: "  data ", Location: "york ", Sector: " software"}.Matches(item))
	assert.True(t, SearchInternshipsRequest{Query: "   "}.Matches(item))
	assert.False(t, SearchInternshipsRequest{Sector: " finance "}.Matches(item))

	got := SearchInternshipsRequest{Query: " a ", Location: "\tb", Sector: "c\n"}.Normalize()
	assert.Equal(t, SearchInternshipsRequest{Query: "a", Location: "b", Sector: "c"}, got)
}
