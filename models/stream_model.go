package models

// Stream and duration codes arrive from the client as short slugs and are
// stored on internships as display labels. The mapping is one-way.

var StreamLabels = map[string]string{
	"ux-ui-design":           "UX/UI Design",
	"full-stack-development": "Full Stack Development",
	"digital-marketing":      "Digital Marketing",
	"creative-video-design":  "Creative & Video Design",
}

var DurationLabels = map[string]string{
	"1-month":  "1 Month",
	"2-months": "2 Months",
	"3-months": "3 Months",
	"6-months": "6 Months",
}

func ValidStream(code string) bool {
	_, ok := StreamLabels[code]
	return ok
}
