package xmind

// markerIcons maps XMind marker ids to FreeMind-style icon names. Markers
// with no sensible counterpart are dropped on decode.
var markerIcons = map[string]string{
	"other-lightbulb":    "idea",
	"other-question":     "help",
	"other-yes":          "yes",
	"other-exclam":       "messagebox_warning",
	"other-no":           "stop-sign",
	"priority-stop":      "stop-sign",
	"priority-1":         "full-1",
	"priority-2":         "full-2",
	"priority-3":         "full-3",
	"priority-4":         "full-4",
	"priority-5":         "full-5",
	"priority-6":         "full-6",
	"priority-7":         "full-7",
	"priority-8":         "full-8",
	"priority-9":         "full-9",
	"smiley-smile":       "ksmiletris",
	"smiley-laugh":       "ksmiletris",
	"smiley-angry":       "smiley-angry",
	"smiley-cry":         "smily_bad",
	"smiley-surprise":    "smiley-oh",
	"task-start":         "go",
	"task-pause":         "prepare",
	"task-done":          "button_ok",
	"flag-red":           "flag",
	"flag-orange":        "flag-orange",
	"flag-yellow":        "flag-yellow",
	"flag-blue":          "flag-blue",
	"flag-green":         "flag-green",
	"flag-purple":        "flag-pink",
	"star-red":           "bookmark",
	"star-orange":        "bookmark",
	"star-yellow":        "bookmark",
	"star-blue":          "bookmark",
	"star-green":         "bookmark",
	"star-purple":        "bookmark",
	"people-green":       "group",
	"people-red":         "group",
	"people-blue":        "group",
	"arrow-up":           "up",
	"arrow-down":         "down",
	"arrow-left":         "back",
	"arrow-right":        "forward",
	"symbol-info":        "info",
	"symbol-question":    "help",
	"symbol-exclam":      "messagebox_warning",
	"symbol-wrong":       "button_cancel",
	"symbol-right":       "button_ok",
	"symbol-plus":        "yes",
	"symbol-minus":       "closed",
	"c_simbol-attention": "messagebox_warning",
}

// iconMarkers maps FreeMind-style icon names back to XMind marker ids.
// The mapping is lossy in both directions (several markers collapse onto
// one icon), so a round-trip normalizes rather than preserves markers.
var iconMarkers = map[string]string{
	"idea":               "other-lightbulb",
	"help":               "other-question",
	"yes":                "other-yes",
	"messagebox_warning": "other-exclam",
	"stop-sign":          "priority-stop",
	"closed":             "symbol-minus",
	"info":               "symbol-info",
	"button_ok":          "task-done",
	"button_cancel":      "symbol-wrong",
	"full-1":             "priority-1",
	"full-2":             "priority-2",
	"full-3":             "priority-3",
	"full-4":             "priority-4",
	"full-5":             "priority-5",
	"full-6":             "priority-6",
	"full-7":             "priority-7",
	"full-8":             "priority-8",
	"full-9":             "priority-9",
	"full-0":             "priority-1",
	"go":                 "task-start",
	"prepare":            "task-pause",
	"stop":               "priority-stop",
	"back":               "arrow-left",
	"forward":            "arrow-right",
	"up":                 "arrow-up",
	"down":               "arrow-down",
	"flag":               "flag-red",
	"flag-black":         "flag-red",
	"flag-blue":          "flag-blue",
	"flag-green":         "flag-green",
	"flag-orange":        "flag-orange",
	"flag-yellow":        "flag-yellow",
	"flag-pink":          "flag-purple",
	"ksmiletris":         "smiley-smile",
	"smiley-angry":       "smiley-angry",
	"smily_bad":          "smiley-cry",
	"smiley-oh":          "smiley-surprise",
	"smiley-neutral":     "smiley-smile",
	"group":              "people-green",
	"bookmark":           "star-yellow",
}

// markerToIcon translates an XMind marker id, reporting whether a
// counterpart exists.
func markerToIcon(markerID string) (string, bool) {
	icon, ok := markerIcons[markerID]
	return icon, ok
}

// iconToMarker translates an icon name, falling back to a generic marker
// for unknown icons so encoding never drops one.
func iconToMarker(icon string) string {
	if m, ok := iconMarkers[icon]; ok {
		return m
	}
	return "other-question"
}
