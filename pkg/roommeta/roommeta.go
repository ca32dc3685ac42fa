package roommeta

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// Tokens holds the locale-specific pieces of the export naming convention.
// The defaults match the Korean campus exports this tool was written for,
// but nothing else in the pipeline assumes a particular script.
type Tokens struct {
	BuildingSuffix string // character that terminates a building name, e.g. "관"
	CapacityLabel  string // label preceding the capacity digits, e.g. "수용인원"
	CapacityUnit   string // unit following the capacity digits, e.g. "명"
}

// DefaultTokens returns the naming tokens used by the stock exports.
func DefaultTokens() Tokens {
	return Tokens{
		BuildingSuffix: "관",
		CapacityLabel:  "수용인원",
		CapacityUnit:   "명",
	}
}

// RoomMeta is everything we can learn about a room from its file name.
// Fields left at their zero value simply were not present in the name.
type RoomMeta struct {
	Building   string
	RoomNumber string
	Floor      int
	Capacity   int
	SourceFile string
}

// Extractor parses room metadata out of export file names.
type Extractor struct {
	building *regexp.Regexp
	room     *regexp.Regexp
	capacity *regexp.Regexp
}

// NewExtractor compiles the file name patterns for the given tokens.
func NewExtractor(t Tokens) *Extractor {
	suffix := regexp.QuoteMeta(t.BuildingSuffix)
	return &Extractor{
		// A building name is a leading run of letters ending in the suffix
		// character, e.g. "프라임관".
		building: regexp.MustCompile(`^(\p{L}+` + suffix + `)`),
		// The room number is the first digit run after the suffix character.
		room:     regexp.MustCompile(suffix + `(\d+)`),
		capacity: regexp.MustCompile(regexp.QuoteMeta(t.CapacityLabel) + `\s*(\d+)` + regexp.QuoteMeta(t.CapacityUnit)),
	}
}

// NewDefaultExtractor is a shorthand for NewExtractor(DefaultTokens()).
func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultTokens())
}

// Extract pulls room metadata from a file name (or path; only the base name
// is inspected). A name that matches none of the patterns yields a RoomMeta
// with only SourceFile set; extraction never fails outright.
func (e *Extractor) Extract(fileName string) RoomMeta {
	name := filepath.Base(fileName)
	meta := RoomMeta{SourceFile: name}

	if m := e.building.FindStringSubmatch(name); m != nil {
		meta.Building = m[1]
	}
	if m := e.room.FindStringSubmatch(name); m != nil {
		meta.RoomNumber = m[1]
	}
	if m := e.capacity.FindStringSubmatch(name); m != nil {
		// The pattern guarantees digits, so Atoi cannot fail here.
		meta.Capacity, _ = strconv.Atoi(m[1])
	}

	// Rooms are numbered <floor><two digits>, so 301 is on floor 3.
	if n, err := strconv.Atoi(meta.RoomNumber); err == nil {
		meta.Floor = n / 100
	}

	return meta
}
