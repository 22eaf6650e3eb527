package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

// DetailFormat selects how a detail record is printed.
type DetailFormat string

const (
	DetailFormatText DetailFormat = "text"
	DetailFormatJSON DetailFormat = "json"
	DetailFormatYAML DetailFormat = "yaml"
)

const statBarWidth = 20

// DetailRecord is the printable form of one creature.
type DetailRecord struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	DisplayName string          `json:"display_name" yaml:"display_name"`
	Favorite    bool            `json:"favorite" yaml:"favorite"`
	Types       []string        `json:"types" yaml:"types"`
	Image       string          `json:"image,omitempty" yaml:"image,omitempty"`
	Height      int             `json:"height" yaml:"height"`
	Weight      int             `json:"weight" yaml:"weight"`
	Stats       []StatRecord    `json:"stats" yaml:"stats"`
	Abilities   []AbilityRecord `json:"abilities" yaml:"abilities"`
}

// StatRecord is one stat in a DetailRecord.
type StatRecord struct {
	Name     string `json:"name" yaml:"name"`
	BaseStat int    `json:"base_stat" yaml:"base_stat"`
}

// AbilityRecord is one ability in a DetailRecord.
type AbilityRecord struct {
	Name   string `json:"name" yaml:"name"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
}

// NewDetailRecord builds a DetailRecord from a fetched detail.
func NewDetailRecord(d pokeapi.Detail, favorite bool) DetailRecord {
	rec := DetailRecord{
		ID:          d.ID,
		Name:        d.Name,
		DisplayName: DisplayName(d.Name),
		Favorite:    favorite,
		Types:       append([]string{}, d.Types...),
		Image:       d.Image,
		Height:      d.Height,
		Weight:      d.Weight,
		Stats:       make([]StatRecord, 0, len(d.Stats)),
		Abilities:   make([]AbilityRecord, 0, len(d.Abilities)),
	}
	for _, s := range d.Stats {
		rec.Stats = append(rec.Stats, StatRecord{Name: s.Name, BaseStat: s.BaseStat})
	}
	for _, a := range d.Abilities {
		rec.Abilities = append(rec.Abilities, AbilityRecord{Name: a.Name, Hidden: a.IsHidden})
	}
	return rec
}

// WriteDetail writes rec in the requested format. Unknown formats are an error.
func WriteDetail(rec DetailRecord, format DetailFormat, writer io.Writer) error {
	switch format {
	case DetailFormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal detail to JSON: %w", err)
		}
		_, err = fmt.Fprintln(writer, string(data))
		return err
	case DetailFormatYAML:
		data, err := yaml.MarshalWithOptions(rec, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return fmt.Errorf("failed to marshal detail to YAML: %w", err)
		}
		_, err = writer.Write(data)
		return err
	case DetailFormatText, "":
		return writeDetailText(rec, writer)
	default:
		return fmt.Errorf("unknown detail format: %s", format)
	}
}

func writeDetailText(rec DetailRecord, writer io.Writer) error {
	var b strings.Builder
	title := fmt.Sprintf("%s %s", ItemNumber(rec.ID), rec.DisplayName)
	if rec.Favorite {
		title += " " + favoriteMark
	}
	fmt.Fprintln(&b, title)
	if len(rec.Types) > 0 {
		fmt.Fprintf(&b, "Types:    %s\n", strings.Join(rec.Types, ", "))
	}
	fmt.Fprintf(&b, "Image:    %s\n", ImageOrPlaceholder(rec.Image))
	fmt.Fprintf(&b, "Height:   %.1f m\n", float64(rec.Height)/10)
	fmt.Fprintf(&b, "Weight:   %.1f kg\n", float64(rec.Weight)/10)
	if len(rec.Stats) > 0 {
		fmt.Fprintln(&b, "Stats:")
		for _, s := range rec.Stats {
			fmt.Fprintf(&b, "  %-16s %3d %s\n", AbilityName(s.Name), s.BaseStat, StatBar(s.BaseStat, statBarWidth))
		}
	}
	if len(rec.Abilities) > 0 {
		fmt.Fprintln(&b, "Abilities:")
		for _, a := range rec.Abilities {
			line := "  " + AbilityName(a.Name)
			if a.Hidden {
				line += " (hidden)"
			}
			fmt.Fprintln(&b, line)
		}
	}
	_, err := io.WriteString(writer, b.String())
	return err
}
