package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	awscost "tasnim.dev/aws-reports/internal/aws/cost"
	awsecr "tasnim.dev/aws-reports/internal/aws/ecr"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMFA_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MFA(&buf, FormatText, []string{"A", "C"}))
	assert.Equal(t, "Users without MFA:\nA\nC\n", buf.String())
}

func TestMFA_TextCompliant(t *testing.T) {
	for _, users := range [][]string{nil, {}} {
		var buf bytes.Buffer
		require.NoError(t, MFA(&buf, FormatText, users))
		assert.Equal(t, "All users have MFA enabled.\n", buf.String())
	}
}

func TestMFA_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MFA(&buf, FormatJSON, nil))

	var doc mfaDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.Compliant)
	assert.Empty(t, doc.UsersWithoutMFA)
	assert.Contains(t, buf.String(), `"users_without_mfa": []`)
}

func utcLocal(t *testing.T) {
	t.Helper()
	prev := time.Local
	time.Local = time.UTC
	t.Cleanup(func() { time.Local = prev })
}

func TestImages_Text(t *testing.T) {
	utcLocal(t)
	pushed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	images := []awsecr.ECRImage{
		{Digest: "sha256:aaa", Tags: []string{"v1", "v2"}, PushedAt: pushed},
		{Digest: "sha256:bbb", PushedAt: pushed.Add(time.Hour)},
	}

	var buf bytes.Buffer
	require.NoError(t, Images(&buf, FormatText, "my-app", images))

	want := "Image Tag: v1\n" +
		"Image Digest: sha256:aaa\n" +
		"Image Pushed At: 2024-01-01 12:00:00+00:00\n" +
		"----\n" +
		"Image Tag: <untagged>\n" +
		"Image Digest: sha256:bbb\n" +
		"Image Pushed At: 2024-01-01 13:00:00+00:00\n" +
		"----\n"
	assert.Equal(t, want, buf.String())
}

func TestImages_TextEmptyRepository(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Images(&buf, FormatText, "my-app", nil))
	assert.Empty(t, buf.String())
}

func TestImages_YAML(t *testing.T) {
	utcLocal(t)
	pushed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, Images(&buf, FormatYAML, "my-app", []awsecr.ECRImage{
		{Digest: "sha256:aaa", PushedAt: pushed},
	}))

	var doc imagesDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "my-app", doc.Repository)
	require.Len(t, doc.Images, 1)
	assert.Equal(t, "<untagged>", doc.Images[0].Tag)
	assert.Empty(t, doc.Images[0].Tags)
	assert.Equal(t, "2024-01-01 12:00:00+00:00", doc.Images[0].PushedAt)
}

func TestCost_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Cost(&buf, FormatText, awscost.Window{Start: "2023-12-26", End: "2024-01-02"}, []awscost.DailyCost{
		{Date: "2024-01-01", Amount: "1.23", Unit: "USD"},
		{Date: "2024-01-02", Amount: "4.56", Unit: "USD"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekly AWS Cost:\n"+
		"Date: 2024-01-01, Cost: 1.23 USD\n"+
		"Date: 2024-01-02, Cost: 4.56 USD\n", buf.String())
}

func TestCost_TextKeepsSeparatorWithoutUnit(t *testing.T) {
	var buf bytes.Buffer
	err := Cost(&buf, FormatText, awscost.Window{}, []awscost.DailyCost{{Date: "2024-01-01", Amount: "0"}})
	require.NoError(t, err)
	assert.Equal(t, "Weekly AWS Cost:\nDate: 2024-01-01, Cost: 0 \n", buf.String())
}

func TestCost_TextNoBuckets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cost(&buf, FormatText, awscost.Window{}, nil))
	assert.Equal(t, "Weekly AWS Cost:\n", buf.String())
}

func TestCost_JSONKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	err := Cost(&buf, FormatJSON, awscost.Window{Start: "2024-01-01", End: "2024-01-08"}, []awscost.DailyCost{
		{Date: "2024-01-02", Amount: "4.56", Unit: "USD"},
		{Date: "2024-01-01", Amount: "1.23", Unit: "USD"},
	})
	require.NoError(t, err)

	var doc costDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2024-01-01", doc.Start)
	assert.Equal(t, "2024-01-08", doc.End)
	require.Len(t, doc.Days, 2)
	assert.Equal(t, "2024-01-02", doc.Days[0].Date)
	assert.Equal(t, "1.23", doc.Days[1].Amount)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteErrorsPropagate(t *testing.T) {
	assert.Error(t, MFA(failingWriter{}, FormatText, []string{"A"}))
	assert.Error(t, Images(failingWriter{}, FormatText, "r", []awsecr.ECRImage{{Digest: "d"}}))
	assert.Error(t, Cost(failingWriter{}, FormatText, awscost.Window{}, nil))
	assert.Error(t, MFA(failingWriter{}, FormatJSON, nil))
}
