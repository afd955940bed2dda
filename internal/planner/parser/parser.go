package parser

import (
	"regexp"
	"strconv"
	"strings"

	"travel-planner/internal/model"
)

// The generator is prompted to emit days and activities in this exact shape:
//
//	**Hari {N}**
//	- **{Name}**: {Hours} | Estimasi Biaya: {Cost} | [Cek Harga]({URL})
//
// Anything that does not match is skipped, never an error: the input is
// free-form AI output and partial results beat no results.
var (
	dayPattern      = regexp.MustCompile(`^\*\*Hari (\d+)\*\*$`)
	activityPattern = regexp.MustCompile(`^-\s+\*\*(.*?)\*\*\s*:\s*(.*?)\s*\|\s*Estimasi Biaya:\s*(.*?)\s*\|\s*\[Cek Harga\]\((.*?)\)$`)
)

// linkPlaceholder is what the generator emits when no price-check URL exists.
const linkPlaceholder = "#"

// ParseItinerary converts the raw generated text into ordered day plans.
//
// Days and activities keep their encounter order. Day numbers are not
// deduplicated: two "**Hari 1**" headers produce two entries. Activity lines
// seen before any day header are dropped. Input with no day headers at all
// yields an empty slice.
func ParseItinerary(raw string) []model.DailyItinerary {
	var days []model.DailyItinerary
	var current *model.DailyItinerary

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := dayPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				days = append(days, *current)
			}
			day, _ := strconv.Atoi(m[1])
			current = &model.DailyItinerary{Day: day, Activities: []model.Activity{}}
			continue
		}

		m := activityPattern.FindStringSubmatch(line)
		if m == nil || current == nil {
			continue
		}

		link := strings.TrimSpace(m[4])
		if link == linkPlaceholder {
			link = ""
		}

		current.Activities = append(current.Activities, model.Activity{
			Name: strings.TrimSpace(m[1]),
			Time: strings.TrimSpace(m[2]),
			Cost: strings.TrimSpace(m[3]),
			Link: link,
		})
	}

	if current != nil {
		days = append(days, *current)
	}

	return days
}
