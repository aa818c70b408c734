package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNeutralCitation(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCitation string
		wantYear     string
	}{
		{
			name:         "high court citation",
			text:         "Mabo v Queensland (No 2) [1992] HCA 23",
			wantCitation: "[1992] HCA 23",
			wantYear:     "1992",
		},
		{
			name:         "tribunal citation mid-title",
			text:         "Smith v Jones [2025] FCAFC 110 (12 August 2025)",
			wantCitation: "[2025] FCAFC 110",
			wantYear:     "2025",
		},
		{
			name:         "mixed-case court code",
			text:         "Re Estate of Brown [2019] VSCa 4",
			wantCitation: "[2019] VSCa 4",
			wantYear:     "2019",
		},
		{
			name: "no citation",
			text: "Fair Work Act 2009 (Cth)",
		},
		{
			name: "bracketed year without code",
			text: "[2020] some annotation",
		},
		{
			name: "lowercase code rejected",
			text: "[2020] hca 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			citation, year := ExtractNeutralCitation(tc.text)
			assert.Equal(t, tc.wantCitation, citation)
			assert.Equal(t, tc.wantYear, year)
		})
	}
}

func TestCaseNamePattern(t *testing.T) {
	tests := []struct {
		query string
		match bool
	}{
		{"Mabo v Queensland", true},
		{"Smith v. Jones", true},
		{"Plaintiff M70 v Minister for Immigration", true},
		{"Donoghue v Stevenson duty of care", true},
		{"negligence duty of care", false},
		{"unfair dismissal", false},
		{"vicarious liability", false},
		{"crimes act victoria", false},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.match, CaseNamePattern.MatchString(tc.query))
		})
	}
}

func TestKnownJurisdiction(t *testing.T) {
	for _, code := range []string{"cth", "act", "nsw", "nt", "qld", "sa", "tas", "vic", "wa"} {
		assert.True(t, KnownJurisdiction(code), code)
	}

	assert.True(t, KnownJurisdiction("NSW"), "matching is case-insensitive")
	assert.False(t, KnownJurisdiction("nz"))
	assert.False(t, KnownJurisdiction(""))
}

func TestJurisdictionFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "commonwealth case",
			path: "/cgi-bin/viewdoc/au/cases/cth/HCA/2025/26.html",
			want: "cth",
		},
		{
			name: "state legislation",
			path: "/au/legis/vic/consol_act/ca195882/",
			want: "vic",
		},
		{
			name: "uppercase segment",
			path: "/au/cases/NSW/NSWSC/2020/1.html",
			want: "nsw",
		},
		{
			name: "no jurisdiction segment",
			path: "/au/journals/SydLawRw/2020/1.html",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, JurisdictionFromPath(tc.path))
		})
	}
}

func TestParagraphNumber(t *testing.T) {
	tests := []struct {
		attr string
		want string
		ok   bool
	}{
		{"para1", "1", true},
		{"para42", "42", true},
		{"para", "", false},
		{"section3", "", false},
		{"para12a", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.attr, func(t *testing.T) {
			got, ok := ParagraphNumber(tc.attr)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
