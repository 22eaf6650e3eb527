package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cristianoliveira/dexview/internal/domain"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favSet map[int]bool

func (f favSet) Contains(id int) bool { return f[id] }
func (f favSet) Len() int             { return len(f) }

func sampleView() domain.View {
	return domain.BuildView(domain.ViewRequest{
		Items: []domain.Item{
			{ID: 25, Position: 1, Name: "pikachu", Types: []string{"electric"}, Image: "img"},
			{ID: 122, Position: 2, Name: "mr-mime", Types: []string{"psychic", "fairy"}},
		},
		Page:     1,
		PageSize: 20,
	})
}

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, "Mr Mime", DisplayName("mr-mime"))
	assert.Equal(t, "Pikachu", DisplayName("pikachu"))
	assert.Equal(t, "lightning rod", AbilityName("lightning-rod"))
	assert.Equal(t, "#025", ItemNumber(25))
	assert.Equal(t, ImagePlaceholder, ImageOrPlaceholder(""))
	assert.InDelta(t, 0.6, StatRatio(90), 0.0001)
	assert.Equal(t, 1.0, StatRatio(255))
	assert.Equal(t, 0.0, StatRatio(-1))
	assert.Equal(t, "##########", StatBar(200, 10))
	assert.Equal(t, "#####.....", StatBar(75, 10))
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeSimple).FormatView(sampleView(), favSet{25: true}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "* #025"))
	assert.Contains(t, lines[0], "Pikachu")
	assert.Contains(t, lines[1], "Mr Mime")
	assert.Contains(t, lines[1], "psychic, fairy")
	assert.Equal(t, "items 1-2 of 2 (page 1/1)", lines[2])
}

func TestSimpleFormatterEmpty(t *testing.T) {
	view := domain.BuildView(domain.ViewRequest{Filter: domain.Filter{FavoritesOnly: true}})
	var buf bytes.Buffer
	require.NoError(t, NewSimpleFormatter().FormatView(view, nil, &buf))
	assert.Contains(t, buf.String(), "No favorites yet")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeTable).FormatView(sampleView(), favSet{122: true}, &buf))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "-----")
	assert.Contains(t, out, "psychic,fairy")
	assert.Contains(t, out, "items 1-2 of 2")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeJSON).FormatView(sampleView(), favSet{25: true}, &buf))

	var decoded struct {
		Items []struct {
			ID       int  `json:"id"`
			Favorite bool `json:"favorite"`
		} `json:"items"`
		TotalItems int    `json:"total_items"`
		EmptyState string `json:"empty_state"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.TotalItems)
	assert.Equal(t, "none", decoded.EmptyState)
	require.Len(t, decoded.Items, 2)
	assert.True(t, decoded.Items[0].Favorite)
	assert.False(t, decoded.Items[1].Favorite)
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("table"))
	assert.False(t, IsValidFormat("xml"))
}

func sampleDetail() pokeapi.Detail {
	return pokeapi.Detail{
		ID:        25,
		Name:      "pikachu",
		Types:     []string{"electric"},
		Height:    4,
		Weight:    60,
		Stats:     []pokeapi.Stat{{Name: "special-attack", BaseStat: 50}},
		Abilities: []pokeapi.Ability{{Name: "static"}, {Name: "lightning-rod", IsHidden: true}},
	}
}

func TestWriteDetailText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetail(NewDetailRecord(sampleDetail(), true), DetailFormatText, &buf))

	out := buf.String()
	assert.Contains(t, out, "#025 Pikachu *")
	assert.Contains(t, out, "Types:    electric")
	assert.Contains(t, out, ImagePlaceholder)
	assert.Contains(t, out, "Height:   0.4 m")
	assert.Contains(t, out, "Weight:   6.0 kg")
	assert.Contains(t, out, "special attack")
	assert.Contains(t, out, "lightning rod (hidden)")
}

func TestWriteDetailJSONAndYAML(t *testing.T) {
	rec := NewDetailRecord(sampleDetail(), false)

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteDetail(rec, DetailFormatJSON, &jsonBuf))
	var decoded DetailRecord
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Equal(t, rec, decoded)

	var yamlBuf bytes.Buffer
	require.NoError(t, WriteDetail(rec, DetailFormatYAML, &yamlBuf))
	out := yamlBuf.String()
	assert.Contains(t, out, "name: pikachu")
	assert.Contains(t, out, "display_name: Pikachu")
	assert.Contains(t, out, "hidden: true")

	assert.Error(t, WriteDetail(rec, DetailFormat("xml"), &bytes.Buffer{}))
}
