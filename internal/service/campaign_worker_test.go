package service

import "testing"

func TestRenderCampaignBody(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		firstName string
		want      string
	}{
		{
			name:      "substitutes the first name",
			html:      "<p>Hi {firstName}, new land just listed.</p>",
			firstName: "Dana",
			want:      "<p>Hi Dana, new land just listed.</p>",
		},
		{
			name:      "replaces every occurrence",
			html:      "{firstName}, this one is for you, {firstName}.",
			firstName: "Marcus",
			want:      "Marcus, this one is for you, Marcus.",
		},
		{
			name:      "body without placeholder is untouched",
			html:      "<p>New listings this week.</p>",
			firstName: "Priya",
			want:      "<p>New listings this week.</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderCampaignBody(tt.html, tt.firstName); got != tt.want {
				t.Errorf("renderCampaignBody() = %q, want %q", got, tt.want)
			}
		})
	}
}
