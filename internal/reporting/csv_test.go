package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildCSVHeaderIsLiteralAndUnquoted(t *testing.T) {
	out := string(buildCSV(nil))
	require.Equal(t, "ID,Visitor Name,Email,Phone,Product,Category,Date", out)
}

func TestBuildCSVQuotesEveryField(t *testing.T) {
	id := primitive.NewObjectID()
	rows := []ExportRow{{
		ID:              id,
		VisitorName:     "Ana Torres",
		VisitorEmail:    "ana@expo.test",
		VisitorPhone:    "+15550001111",
		ProductName:     "Smart Home Hub",
		ProductCategory: "Electronics",
		InquiryDate:     time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC),
	}}

	out := string(buildCSV(rows))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 7)
	for _, f := range fields {
		require.True(t, strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`), "field %q not quoted", f)
	}
	require.Equal(t, `"`+id.Hex()+`"`, fields[0])
	require.Equal(t, `"Mar 14, 2026"`, fields[6])
}

func TestBuildCSVMissingJoinFieldsBecomeNA(t *testing.T) {
	rows := []ExportRow{{
		ID:           primitive.NewObjectID(),
		VisitorPhone: "+15550002222",
		// Visitor and product never resolved; date missing entirely.
	}}

	out := string(buildCSV(rows))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"N/A","N/A","+15550002222","N/A","N/A","N/A"`)
}

func TestBuildCSVEscapesEmbeddedQuotes(t *testing.T) {
	rows := []ExportRow{{
		ID:          primitive.NewObjectID(),
		ProductName: `49" Display`,
		InquiryDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}}

	out := string(buildCSV(rows))
	require.Contains(t, out, `"49"" Display"`)
}

func TestBuildCSVHasNoTrailingNewline(t *testing.T) {
	rows := []ExportRow{{ID: primitive.NewObjectID(), InquiryDate: time.Now()}}
	out := buildCSV(rows)
	require.NotEqual(t, byte('\n'), out[len(out)-1])
}
