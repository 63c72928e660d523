// Package transport maps story eras to plausible travel methods and
// extracts transport mentions from chapter prose.
package transport

import (
	"sort"
	"strings"

	"github.com/halc8312/shinwa-sub002/internal/model"
)

// Speeds are map units per hour on the normalized 0-100 plane.
var methodSpeeds = map[model.TransportType]float64{
	model.TransportWalk:     4,
	model.TransportHorse:    12,
	model.TransportCart:     6,
	model.TransportCarriage: 8,
	model.TransportShip:     15,
	model.TransportBicycle:  10,
	model.TransportCar:      60,
	model.TransportTrain:    80,
	model.TransportAirplane: 500,
	model.TransportFlight:   40,
	model.TransportTeleport: 10000,
}

// Method builds a TransportMethod for a known type, falling back to
// walking speed for unknown custom types so speed stays positive.
func Method(t model.TransportType) model.TransportMethod {
	speed, ok := methodSpeeds[t]
	if !ok {
		speed = methodSpeeds[model.TransportWalk]
	}
	return model.TransportMethod{Type: t, Speed: speed, Availability: "common"}
}

// eraEntry declares the default transport set for one era. Labels are
// matched substring-tolerantly in both directions so compound era
// labels like "中世ファンタジー" or "medieval-fantasy" still hit.
type eraEntry struct {
	labels  []string
	methods []model.TransportType
}

var eraTable = []eraEntry{
	{
		labels:  []string{"ancient", "古代"},
		methods: []model.TransportType{model.TransportWalk, model.TransportHorse, model.TransportShip, model.TransportCart},
	},
	{
		labels:  []string{"medieval", "中世"},
		methods: []model.TransportType{model.TransportWalk, model.TransportHorse, model.TransportCarriage, model.TransportShip},
	},
	{
		labels:  []string{"modern", "現代"},
		methods: []model.TransportType{model.TransportWalk, model.TransportCar, model.TransportTrain, model.TransportAirplane, model.TransportBicycle},
	},
	{
		labels:  []string{"fantasy", "ファンタジー", "魔法"},
		methods: []model.TransportType{model.TransportWalk, model.TransportHorse, model.TransportFlight, model.TransportTeleport, model.TransportShip},
	},
}

// defaultEraIndex points at the medieval set, the declared fallback for
// unrecognized era labels.
const defaultEraIndex = 1

// DefaultsForEra looks up the default transport list for a free-text
// era label. An unmatched label falls back to the medieval set; that is
// a business rule, not an error.
func DefaultsForEra(era string) []model.TransportMethod {
	label := strings.ToLower(strings.TrimSpace(era))
	entry := eraTable[defaultEraIndex]
	if label != "" {
	find:
		for _, e := range eraTable {
			for _, l := range e.labels {
				if strings.Contains(label, l) || strings.Contains(l, label) {
					entry = e
					break find
				}
			}
		}
	}

	methods := make([]model.TransportMethod, 0, len(entry.methods))
	for _, t := range entry.methods {
		methods = append(methods, Method(t))
	}
	return methods
}

// Available returns the transports for a project: saved custom
// overrides verbatim when present, otherwise the era defaults. A walk
// option is always guaranteed even if the upstream set is empty.
func Available(settings model.WorldSettings, custom []model.TransportMethod) []model.TransportMethod {
	methods := custom
	if len(methods) == 0 {
		methods = DefaultsForEra(settings.Era)
	}
	return ensureWalk(methods)
}

func ensureWalk(methods []model.TransportMethod) []model.TransportMethod {
	for _, m := range methods {
		if m.Type == model.TransportWalk {
			return methods
		}
	}
	return append(methods, Method(model.TransportWalk))
}

// keywords maps each transport type to the tokens that imply it in
// chapter prose.
var keywords = map[model.TransportType][]string{
	model.TransportHorse:    {"馬", "horse"},
	model.TransportShip:     {"船", "ship", "boat"},
	model.TransportCarriage: {"馬車", "carriage"},
	model.TransportFlight:   {"飛竜", "飛行", "竜に乗"},
	model.TransportBicycle:  {"自転車", "bicycle"},
	model.TransportTrain:    {"電車", "汽車", "train"},
	model.TransportAirplane: {"飛行機", "airplane"},
	model.TransportCar:      {"自動車", "車で"},
	model.TransportTeleport: {"転移", "テレポート"},
	model.TransportWalk:     {"徒歩", "歩いて"},
}

type scanKeyword struct {
	t  model.TransportType
	kw string
}

// scanKeywords is every keyword sorted longest first, so compound
// tokens win over their substrings (馬車 over 馬, 飛行機 over 飛行).
var scanKeywords = func() []scanKeyword {
	var all []scanKeyword
	for t, kws := range keywords {
		for _, kw := range kws {
			all = append(all, scanKeyword{t: t, kw: kw})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i].kw) != len(all[j].kw) {
			return len(all[i].kw) > len(all[j].kw)
		}
		return all[i].kw < all[j].kw
	})
	return all
}()

// ExtractFromChapter scans chapter text for transport keywords. Each
// type appears at most once, ordered by its first occurrence in the
// text regardless of how often its keywords repeat.
func ExtractFromChapter(text string) []model.TransportType {
	seen := make(map[model.TransportType]bool)
	var types []model.TransportType

	for i := 0; i < len(text); {
		advance := 1
		for _, k := range scanKeywords {
			if strings.HasPrefix(text[i:], k.kw) {
				if !seen[k.t] {
					seen[k.t] = true
					types = append(types, k.t)
				}
				advance = len(k.kw)
				break
			}
		}
		i += advance
	}
	return types
}

// DefaultCharacterTransports is what a character can use when no
// explicit list has been saved for them.
func DefaultCharacterTransports() []model.TransportType {
	return []model.TransportType{model.TransportWalk}
}
