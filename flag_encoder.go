package roadgraph

import (
	"github.com/paulmach/osm"
)

// Layout of edge flags:
//
//	bit 0     - edge could be traversed nodeA -> nodeB
//	bit 1     - edge could be traversed nodeB -> nodeA
//	bits 2..7 - road class (HighwayType)
//	bit 8     - edge is a shortcut
const (
	FlagForward  = 1 << 0
	FlagBackward = 1 << 1
	FlagsBoth    = FlagForward | FlagBackward
	FlagShortcut = 1 << 8

	roadClassShift = 2
	roadClassMask  = 0x3F << roadClassShift
)

// EncodeFlags packs road class and allowed directions into flags
func EncodeFlags(highway HighwayType, forward, backward bool) int {
	flags := (int(highway) << roadClassShift) & roadClassMask
	if forward {
		flags |= FlagForward
	}
	if backward {
		flags |= FlagBackward
	}
	return flags
}

// RoadClass extracts road class from flags
func RoadClass(flags int) HighwayType {
	return HighwayType((flags & roadClassMask) >> roadClassShift)
}

func IsForward(flags int) bool {
	return flags&FlagForward != 0
}

func IsBackward(flags int) bool {
	return flags&FlagBackward != 0
}

func IsShortcutFlags(flags int) bool {
	return flags&FlagShortcut != 0
}

// SwapDirection exchanges forward and backward bits
func SwapDirection(flags int) int {
	dirs := flags & FlagsBoth
	if dirs == FlagForward || dirs == FlagBackward {
		flags ^= FlagsBoth
	}
	return flags
}

var (
	// Restrictions are checked from the most specific key to the most general one
	accessKeys   = []string{"motorcar", "motor_vehicle", "access"}
	accessDenied = map[string]struct{}{
		"no":      {},
		"private": {},
	}
)

// FlagEncoder turns OSM tags into edge flags. Only ways with EntityName tag in Tags are accepted.
type FlagEncoder struct {
	EntityName string   `yaml:"entity_name"` // Currrently we support 'highway' only
	Tags       []string `yaml:"tags"`
}

// NewFlagEncoder returns encoder for 'highway' entity with given set of accepted tags
func NewFlagEncoder(tags []string) *FlagEncoder {
	return &FlagEncoder{
		EntityName: "highway",
		Tags:       tags,
	}
}

// CheckTag checks if incoming tag is represented in configuration
func (enc *FlagEncoder) CheckTag(tag string) bool {
	for i := range enc.Tags {
		if enc.Tags[i] == tag {
			return true
		}
	}
	return false
}

// EncodeTags returns flags for OSM way tags. Second value is false if way should not be routable.
func (enc *FlagEncoder) EncodeTags(tags osm.Tags) (int, bool) {
	tag := tags.Find(enc.EntityName)
	if tag == "" || !enc.CheckTag(tag) {
		return 0, false
	}
	for _, key := range accessKeys {
		if _, denied := accessDenied[tags.Find(key)]; denied {
			return 0, false
		}
	}
	forward, backward := true, true
	switch tags.Find("oneway") {
	case "yes", "1", "true":
		backward = false
	case "-1", "reverse":
		forward = false
	case "no", "0", "false":
	default:
		if tags.Find("junction") == "roundabout" {
			backward = false
		}
	}
	return EncodeFlags(getHighwayType(tag), forward, backward), true
}
