package pokeapi

import (
	"strconv"
	"strings"
)

// ListEntry is one entry of a paginated resource list.
type ListEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RemoteID returns the numeric identifier embedded in the entry URL
// (".../pokemon/25/"), or false when the URL carries none.
func (e ListEntry) RemoteID() (int, bool) {
	return IDFromURL(e.URL)
}

// IDFromURL parses the last numeric path segment of a resource URL.
func IDFromURL(rawURL string) (int, bool) {
	trimmed := strings.TrimRight(rawURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, false
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// TypeRef names one entry of the type taxonomy.
type TypeRef = ListEntry

// Stat is one base statistic of a creature.
type Stat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"base_stat"`
}

// Ability is one ability of a creature.
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

// Detail is the decoded per-creature record.
type Detail struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Types     []string  `json:"types"`
	Image     string    `json:"image,omitempty"`
	Stats     []Stat    `json:"stats"`
	Abilities []Ability `json:"abilities"`
	Height    int       `json:"height"`
	Weight    int       `json:"weight"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// listResponse is the envelope of every paginated list endpoint.
type listResponse struct {
	Count   int         `json:"count"`
	Results []ListEntry `json:"results"`
}

// detailResponse mirrors the subset of /pokemon/{id} that dexview reads.
type detailResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		IsHidden bool          `json:"is_hidden"`
		Ability  namedResource `json:"ability"`
	} `json:"abilities"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// typeResponse mirrors the subset of /type/{name} that dexview reads.
type typeResponse struct {
	Name    string `json:"name"`
	Pokemon []struct {
		Pokemon ListEntry `json:"pokemon"`
	} `json:"pokemon"`
}

func (r detailResponse) toDetail() Detail {
	d := Detail{
		ID:        r.ID,
		Name:      r.Name,
		Height:    r.Height,
		Weight:    r.Weight,
		Types:     make([]string, 0, len(r.Types)),
		Stats:     make([]Stat, 0, len(r.Stats)),
		Abilities: make([]Ability, 0, len(r.Abilities)),
		Image:     r.image(),
	}
	for _, t := range r.Types {
		d.Types = append(d.Types, t.Type.Name)
	}
	for _, s := range r.Stats {
		d.Stats = append(d.Stats, Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	for _, a := range r.Abilities {
		d.Abilities = append(d.Abilities, Ability{Name: a.Ability.Name, IsHidden: a.IsHidden})
	}
	return d
}

// image prefers the official artwork and falls back to the default sprite.
func (r detailResponse) image() string {
	if art := r.Sprites.Other.OfficialArtwork.FrontDefault; art != nil && *art != "" {
		return *art
	}
	if front := r.Sprites.FrontDefault; front != nil {
		return *front
	}
	return ""
}
