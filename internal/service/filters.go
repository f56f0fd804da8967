package service

import (
	"sort"
	"strings"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterClients keeps clients whose brand name, country or domain contain
// the query. A blank query keeps everything.
func FilterClients(clients []*models.Client, query string) []*models.Client {
	q := normalizeQuery(query)
	if q == "" {
		return clients
	}
	out := make([]*models.Client, 0, len(clients))
	for _, c := range clients {
		if matches(q, c.BrandName, c.CountryName, c.Domain) {
			out = append(out, c)
		}
	}
	return out
}

func SortClients(clients []*models.Client) {
	sort.SliceStable(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].BrandName) < strings.ToLower(clients[j].BrandName)
	})
}

var campaignStatusRank = map[string]int{
	models.CampaignStatusRunning:  0,
	models.CampaignStatusPlanned:  1,
	models.CampaignStatusIdea:     2,
	models.CampaignStatusFinished: 3,
}

func statusRank(status string) int {
	if r, ok := campaignStatusRank[status]; ok {
		return r
	}
	return len(campaignStatusRank)
}

// SortCampaigns orders Running, Planned, Idea, Finished and then anything
// unknown, by title inside a status.
func SortCampaigns(campaigns []*models.Campaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		ri, rj := statusRank(campaigns[i].Status), statusRank(campaigns[j].Status)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(campaigns[i].Title) < strings.ToLower(campaigns[j].Title)
	})
}

func FilterCampaigns(campaigns []*models.Campaign, query string) []*models.Campaign {
	q := normalizeQuery(query)
	if q == "" {
		return campaigns
	}
	out := make([]*models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if matches(q, c.Title, c.ClientName, c.TargetAudience) {
			out = append(out, c)
		}
	}
	return out
}

func FilterVideos(videos []*models.Video, query string) []*models.Video {
	q := normalizeQuery(query)
	if q == "" {
		return videos
	}
	out := make([]*models.Video, 0, len(videos))
	for _, v := range videos {
		if matches(q, v.Title, v.CampaignTitle, v.CreatorName) {
			out = append(out, v)
		}
	}
	return out
}
