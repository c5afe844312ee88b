package formatter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/leveling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var viewNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestFormatProgress(t *testing.T) {
	resp := &app.ProgressResponse{
		GeneratedAt: viewNow,
		Level:       leveling.FromXP(1720),
		XPToNext:    280,
		Simulations: []app.SimulationXP{
			{ShortID: "LOGO01", Title: "Logo", Status: domain.StatusCompleted, Messages: 5,
				Contribution: leveling.Contribution{Base: 100, Engagement: 50, Bonus: 500}},
			{ShortID: "WEB01", Title: "Website", Status: domain.StatusInProgress, Messages: 2,
				Contribution: leveling.Contribution{Base: 100, Engagement: 20, Bonus: 150, Penalty: 200}},
		},
	}
	out := stripANSI(FormatProgress(resp))

	assert.Contains(t, out, "Level 2")
	assert.Contains(t, out, "1720 XP")
	assert.Contains(t, out, "72%")
	assert.Contains(t, out, "280 XP to level 3")
	assert.Contains(t, out, "LOGO01")
	assert.Contains(t, out, "-200")
	assert.Contains(t, out, "650")
}

func TestFormatProgress_Empty(t *testing.T) {
	out := stripANSI(FormatProgress(&app.ProgressResponse{Level: leveling.FromXP(0), XPToNext: 1000}))
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "No simulations yet")
}

func TestFormatDeadlines(t *testing.T) {
	due := viewNow.Add(5 * time.Hour)
	resp := &app.DeadlineResponse{
		Summary: app.DeadlineSummary{
			GeneratedAt: viewNow, CountsTotal: 2, CountsUrgent: 1,
			PolicyMessage: "1 due within 24h",
		},
		Notices: []app.DeadlineNotice{
			{ShortID: "URG01", Title: "Poster", Client: "Acme", Deadline: &due,
				Result: deadline.Result{State: deadline.StateUrgent, DisplayText: "5h remaining"}},
			{ShortID: "OPN01", Title: "Blog",
				Result: deadline.Result{State: deadline.StateNone, DisplayText: deadline.NoneText}},
		},
	}
	out := stripANSI(FormatDeadlines(resp))

	assert.Contains(t, out, "2 simulations")
	assert.Contains(t, out, "1 due within 24h")
	assert.Contains(t, out, "▲ URGENT")
	assert.Contains(t, out, "5h remaining")
	assert.Contains(t, out, "Mar 10, 2025 5:00 PM (Today)")
	assert.Contains(t, out, "No deadline")
}

func TestFormatDeadlines_Empty(t *testing.T) {
	out := stripANSI(FormatDeadlines(&app.DeadlineResponse{Summary: app.DeadlineSummary{PolicyMessage: "Nothing pressing"}}))
	assert.Contains(t, out, "No active simulations")
}

func TestFormatCountdown(t *testing.T) {
	out := stripANSI(FormatCountdown(CountdownData{
		ShortID:  "LOGO01",
		Title:    "Logo",
		Client:   "Acme",
		Deadline: viewNow.Add(50 * time.Hour),
		HasDate:  true,
		Result:   deadline.Result{State: deadline.StateSoon, DisplayText: "2d 02:00:00"},
		Now:      viewNow,
	}))
	assert.Contains(t, out, "COUNTDOWN")
	assert.Contains(t, out, "2d 02:00:00")
	assert.Contains(t, out, "● SOON")
	assert.Contains(t, out, "for Acme")
	assert.Contains(t, out, "Mar 12, 2025 2:00 PM")
}

func TestFormatSimulationList(t *testing.T) {
	due := viewNow.Add(30 * time.Minute)
	archived := viewNow
	sims := []*domain.Simulation{
		{ID: "11111111-aaaa", ShortID: "LOGO01", Title: "Logo", Client: "Acme", Status: domain.StatusInProgress, Deadline: &due},
		{ID: "abcdef12-3456", Title: "Legacy", Status: domain.StatusCreated, ArchivedAt: &archived},
	}
	out := stripANSI(FormatSimulationList(sims, viewNow, 24))

	assert.Contains(t, out, "LOGO01")
	assert.Contains(t, out, "30m remaining")
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "(archived)")

	assert.Contains(t, stripANSI(FormatSimulationList(nil, viewNow, 24)), "No simulations yet")
}

func TestFormatSimulationInspect(t *testing.T) {
	due := viewNow.Add(-time.Hour)
	out := stripANSI(FormatSimulationInspect(SimulationInspectData{
		Simulation: &domain.Simulation{
			ID: "12345678-abcd", ShortID: "WEB01", Title: "Website", Client: "Bakery",
			Status: domain.StatusInProgress, Deadline: &due, CreatedAt: viewNow.Add(-48 * time.Hour),
		},
		Messages: 4,
		XP:       90,
		Deadline: deadline.Result{State: deadline.StatePassed, DisplayText: deadline.PassedText},
		Now:      viewNow,
	}))

	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "for Bakery")
	assert.Contains(t, out, "12345678")
	assert.Contains(t, out, "Mar 8, 2025")
	assert.Contains(t, out, "Deadline has passed")
	assert.Contains(t, out, "90")
}

func TestFormatMessages(t *testing.T) {
	sim := &domain.Simulation{ShortID: "LOGO01"}
	msgs := []*domain.Message{
		{Sender: domain.SenderClient, Body: "Need a **logo**\n- modern\n- green", SentAt: viewNow.Add(-time.Hour)},
		{Sender: domain.SenderUser, Body: "On it", SentAt: viewNow.Add(-30 * time.Minute)},
	}
	out := stripANSI(FormatMessages(sim, msgs, viewNow))

	assert.Contains(t, out, "CHAT · LOGO01")
	assert.Contains(t, out, "Client")
	assert.Contains(t, out, "Today 11:00 AM")
	assert.Contains(t, out, "logo")
	assert.NotContains(t, out, "**")
	assert.Contains(t, out, "• modern")
	assert.Contains(t, out, "You")

	assert.Contains(t, stripANSI(FormatMessages(sim, nil, viewNow)), "No messages yet")
}

func samplePortfolio() *app.Portfolio {
	return &app.Portfolio{
		Owner:       "sam",
		GeneratedAt: viewNow,
		Level:       2,
		XP:          1510,
		Entries: []app.PortfolioEntry{
			{ShortID: "LOGO01", Title: "Logo", Client: "Acme", CompletedAt: viewNow, Messages: 3, XP: 630, Brief: "A bold logo"},
		},
	}
}

func TestEncodePortfolio_YAML(t *testing.T) {
	out, err := EncodePortfolio(samplePortfolio(), PortfolioYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "owner: sam")
	assert.Contains(t, out, "projects:")
	assert.Contains(t, out, "short_id: LOGO01")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1510, decoded["xp"])
}

func TestEncodePortfolio_JSON(t *testing.T) {
	out, err := EncodePortfolio(samplePortfolio(), PortfolioJSON)
	require.NoError(t, err)

	var decoded struct {
		Level    int `json:"level"`
		Projects []struct {
			Brief string `json:"brief"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 2, decoded.Level)
	require.Len(t, decoded.Projects, 1)
	assert.Equal(t, "A bold logo", decoded.Projects[0].Brief)
}

func TestEncodePortfolio_UnknownFormat(t *testing.T) {
	_, err := EncodePortfolio(samplePortfolio(), "toml")
	assert.Error(t, err)
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(&app.ImportResult{Created: []*domain.Simulation{
		{ShortID: "LOGO01", Title: "Logo", Status: domain.StatusCompleted, ImportedMessages: 8},
	}}))
	assert.Contains(t, out, "Imported 1 simulation")
	assert.Contains(t, out, "8 messages")
}
