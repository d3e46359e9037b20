// internal/defs/details.go
package defs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Метки секций в файле .details
const (
	SectionFarmer    = "chickenFarmer"
	SectionCabbages  = "cabbages"
	SectionMagpies   = "magpieSpawner"
	SectionEagles    = "eagleSpawner"
	SectionPigeons   = "pigeonSpawner"
	SectionHives     = "beehiveSpawner"
	SectionScarecrow = "scarecrowSpawner"
)

// SpawnerDetails is one spawn point: position plus timer duration in ticks.
type SpawnerDetails struct {
	X, Y     int
	Duration int
}

func (d SpawnerDetails) String() string {
	return fmt.Sprintf("Spawner[x:%d,y:%d,duration:%d]", d.X, d.Y, d.Duration)
}

// PlayerDetails is the farmer's starting position and resources.
type PlayerDetails struct {
	X, Y  int
	Coins int
	Food  int
}

func (d PlayerDetails) String() string {
	return fmt.Sprintf("Player[x:%d,y:%d,coins:%d,food:%d]", d.X, d.Y, d.Coins, d.Food)
}

// CabbageDetails is a starting crop position.
type CabbageDetails struct {
	X, Y int
}

// Details is everything a .details file describes.
type Details struct {
	Player     PlayerDetails
	Cabbages   []CabbageDetails
	Magpies    []SpawnerDetails
	Eagles     []SpawnerDetails
	Pigeons    []SpawnerDetails
	Hives      []SpawnerDetails
	Scarecrows []SpawnerDetails
}

// ReadDetailsFile loads the raw contents of a .details file.
func ReadDetailsFile(path string) (string, error) {
	if !strings.HasSuffix(path, ".details") {
		return "", fmt.Errorf("%s: %w", path, ErrBadExtension)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read details file: %w", err)
	}
	return string(data), nil
}

// Section returns the lowercased, trimmed lines between ":label:" and the next "end;".
// Labels are matched case-insensitively.
func Section(label, contents string) ([]string, error) {
	header := ":" + strings.ToLower(strings.TrimSpace(label)) + ":"
	collecting := false
	section := []string{}
	for _, raw := range strings.Split(contents, "\n") {
		line := strings.ToLower(strings.TrimSpace(raw))
		if collecting {
			if line == "end;" {
				return section, nil
			}
			section = append(section, line)
			continue
		}
		if line == header {
			collecting = true
		}
	}
	return nil, fmt.Errorf("%s: %w", label, ErrSectionNotFound)
}

// fields parses "k1:v1 k2:v2 ..." checking the keys in order.
func fields(section string, lineNo int, line string, keys ...string) ([]int, error) {
	chunks := strings.Fields(line)
	if len(chunks) != len(keys) {
		return nil, &LoadError{
			Section: section,
			Line:    lineNo,
			Reason:  fmt.Sprintf("expected %d fields, got %d", len(keys), len(chunks)),
		}
	}
	values := make([]int, len(keys))
	for i, chunk := range chunks {
		key, value, ok := strings.Cut(chunk, ":")
		if !ok || key != keys[i] {
			return nil, &LoadError{Section: section, Line: lineNo, Reason: fmt.Sprintf("expected %q field, got %q", keys[i], chunk)}
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, &LoadError{Section: section, Line: lineNo, Reason: "bad number for " + key, Err: err}
		}
		values[i] = n
	}
	return values, nil
}

// ParseSpawnerLine parses "x:<int> y:<int> duration:<int>".
func ParseSpawnerLine(line string) (SpawnerDetails, error) {
	return parseSpawnerLine("", 1, line)
}

func parseSpawnerLine(section string, lineNo int, line string) (SpawnerDetails, error) {
	v, err := fields(section, lineNo, line, "x", "y", "duration")
	if err != nil {
		return SpawnerDetails{}, err
	}
	return SpawnerDetails{X: v[0], Y: v[1], Duration: v[2]}, nil
}

// ParsePlayerLine parses "x:<int> y:<int> coins:<int> food:<int>".
func ParsePlayerLine(line string) (PlayerDetails, error) {
	v, err := fields(SectionFarmer, 1, line, "x", "y", "coins", "food")
	if err != nil {
		return PlayerDetails{}, err
	}
	return PlayerDetails{X: v[0], Y: v[1], Coins: v[2], Food: v[3]}, nil
}

// ParseCabbageLine parses "x:<int> y:<int>".
func ParseCabbageLine(line string) (CabbageDetails, error) {
	return parseCabbageLine(1, line)
}

func parseCabbageLine(lineNo int, line string) (CabbageDetails, error) {
	v, err := fields(SectionCabbages, lineNo, line, "x", "y")
	if err != nil {
		return CabbageDetails{}, err
	}
	return CabbageDetails{X: v[0], Y: v[1]}, nil
}

// Spawners reads every spawn point of a section. Blank lines are skipped.
func Spawners(label, contents string) ([]SpawnerDetails, error) {
	lines, err := Section(label, contents)
	if err != nil {
		return nil, err
	}
	list := []SpawnerDetails{}
	for i, line := range lines {
		if line == "" {
			continue
		}
		d, err := parseSpawnerLine(label, i+1, line)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

// Player reads the single chickenFarmer entry.
func Player(contents string) (PlayerDetails, error) {
	lines, err := Section(SectionFarmer, contents)
	if err != nil {
		return PlayerDetails{}, err
	}
	entries := nonBlank(lines)
	if len(entries) != 1 {
		return PlayerDetails{}, &LoadError{
			Section: SectionFarmer,
			Line:    1,
			Reason:  fmt.Sprintf("expected exactly one farmer, got %d", len(entries)),
		}
	}
	return ParsePlayerLine(entries[0])
}

// Cabbages reads the starting crop positions.
func Cabbages(contents string) ([]CabbageDetails, error) {
	lines, err := Section(SectionCabbages, contents)
	if err != nil {
		return nil, err
	}
	list := []CabbageDetails{}
	for i, line := range lines {
		if line == "" {
			continue
		}
		d, err := parseCabbageLine(i+1, line)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

// ParseDetails reads a whole .details document. The farmer, cabbage and bird spawner sections
// are required; the hive and scarecrow spawner sections are optional.
func ParseDetails(contents string) (*Details, error) {
	var (
		d   Details
		err error
	)
	if d.Player, err = Player(contents); err != nil {
		return nil, err
	}
	if d.Cabbages, err = Cabbages(contents); err != nil {
		return nil, err
	}
	if d.Magpies, err = Spawners(SectionMagpies, contents); err != nil {
		return nil, err
	}
	if d.Eagles, err = Spawners(SectionEagles, contents); err != nil {
		return nil, err
	}
	if d.Pigeons, err = Spawners(SectionPigeons, contents); err != nil {
		return nil, err
	}
	if d.Hives, err = optionalSpawners(SectionHives, contents); err != nil {
		return nil, err
	}
	if d.Scarecrows, err = optionalSpawners(SectionScarecrow, contents); err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalSpawners(label, contents string) ([]SpawnerDetails, error) {
	list, err := Spawners(label, contents)
	if errors.Is(err, ErrSectionNotFound) {
		return nil, nil
	}
	return list, err
}

func nonBlank(lines []string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
